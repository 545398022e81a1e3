package lamport

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/Kriegslustig/lamport/internal/bitseq"
)

// VerifySignature reports whether sig signs digest under pk. Every revealed
// word is hashed and compared with public-key word i of the half selected by
// digest bit i.
//
// By default it returns false at the first word that does not match, so its
// running time depends on where the mismatch is. WithConstantTimeVerify and
// WithParallelVerify compare every word instead.
//
// A digest that is not WordLen bytes fails with ErrInvalidInputLength; a
// provider failure is returned as an error.
func (s *Scheme) VerifySignature(ctx context.Context, pk *PublicKey, digest []byte, sig *Signature) (bool, error) {
	if len(digest) != WordLen {
		return false, fmt.Errorf("%w: digest is %d bytes, want %d", ErrInvalidInputLength, len(digest), WordLen)
	}

	switch {
	case s.parallelVerify:
		return s.verifyAll(ctx, pk, digest, sig, s.parallelism)
	case s.constantTime:
		return s.verifyAll(ctx, pk, digest, sig, 1)
	default:
		return s.verifyEarlyExit(ctx, pk, digest, sig)
	}
}

func (s *Scheme) verifyEarlyExit(ctx context.Context, pk *PublicKey, digest []byte, sig *Signature) (bool, error) {
	for i, b := range bitseq.Bits(digest) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		d, err := s.digest(sig.Word(i))
		if err != nil {
			return false, fmt.Errorf("lamport: hashing word %d: %w", i, err)
		}
		if !bytes.Equal(d, pk.Word(b, i)) {
			s.logger.Debug("signature word mismatch", "word", i)
			return false, nil
		}
	}
	return true, nil
}

// verifyAll hashes every signature word, then folds the word comparisons
// into one constant-time result.
func (s *Scheme) verifyAll(ctx context.Context, pk *PublicKey, digest []byte, sig *Signature, workers int) (bool, error) {
	hashes := make([]byte, SignatureLen)
	if err := s.hashWords(ctx, sig[:], hashes, workers); err != nil {
		return false, err
	}

	ok := 1
	for i, b := range bitseq.Bits(digest) {
		ok &= subtle.ConstantTimeCompare(hashes[i*WordLen:(i+1)*WordLen], pk.Word(b, i))
	}
	if ok != 1 {
		s.logger.Debug("signature mismatch")
	}
	return ok == 1, nil
}

// Verify splits a signed message, hashes the message part and verifies the
// signature part against the digest. A signed message shorter than
// SignatureLen fails with ErrInvalidInputLength.
func (s *Scheme) Verify(ctx context.Context, pk *PublicKey, signed []byte) (bool, error) {
	message, sig, err := SplitSignedMessage(signed)
	if err != nil {
		return false, err
	}
	d, err := s.digest(message)
	if err != nil {
		return false, fmt.Errorf("lamport: hashing message: %w", err)
	}
	return s.VerifySignature(ctx, pk, d, sig)
}
