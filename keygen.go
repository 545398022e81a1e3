package lamport

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GenerateKeyPair fills a new secret key from the provider's random source
// and derives the public key by hashing every secret word.
//
// A random source or hash failure aborts the whole call: the partial secret
// key is wiped and no key pair is returned.
func (s *Scheme) GenerateKeyPair(ctx context.Context) (*KeyPair, error) {
	sk := new(SecretKey)
	if err := s.provider.Fill(sk[:]); err != nil {
		sk.Wipe()
		return nil, fmt.Errorf("lamport: reading randomness: %w", err)
	}

	pk := new(PublicKey)
	if err := s.hashWords(ctx, sk[:], pk[:], s.parallelism); err != nil {
		sk.Wipe()
		return nil, err
	}

	s.logger.Debug("generated key pair", "fingerprint", pk.Fingerprint())
	return &KeyPair{Secret: sk, Public: pk}, nil
}

// hashWords writes the digest of every WordLen-byte word of src to the same
// offset in dst, using up to workers goroutines. Each goroutine owns a
// contiguous run of words, so no two goroutines touch the same bytes of dst.
func (s *Scheme) hashWords(ctx context.Context, src, dst []byte, workers int) error {
	n := len(src) / WordLen
	workers = min(workers, n)
	if workers <= 1 {
		return s.hashRange(ctx, src, dst, 0, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	per := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += per {
		hi := min(lo+per, n)
		g.Go(func() error {
			return s.hashRange(gctx, src, dst, lo, hi)
		})
	}
	return g.Wait()
}

func (s *Scheme) hashRange(ctx context.Context, src, dst []byte, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		off := i * WordLen
		d, err := s.digest(src[off : off+WordLen])
		if err != nil {
			return fmt.Errorf("lamport: hashing word %d: %w", i, err)
		}
		copy(dst[off:off+WordLen], d)
	}
	return nil
}
