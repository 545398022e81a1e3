package lamport

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/Kriegslustig/lamport/internal/crypto"
)

// Provider supplies the hash function and the secure random source.
//
// Digest must return exactly WordLen bytes for any input. Fill must fill the
// whole buffer with cryptographically unpredictable bytes. Both must be safe
// for concurrent use when the Scheme's parallelism is above 1.
type Provider interface {
	Digest(data []byte) ([]byte, error)
	Fill(buf []byte) error
}

// NewProvider returns a Provider hashing with the named algorithm ("SHA-256",
// "BLAKE2b-256" or "SHA3-256") and reading from crypto/rand. Any other name
// fails with ErrUnsupportedAlgorithm.
func NewProvider(alg string) (Provider, error) {
	p, err := crypto.NewProvider(alg, nil)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Scheme signs and verifies with a fixed provider and settings. A Scheme is
// immutable and safe for concurrent use.
type Scheme struct {
	provider       Provider
	parallelism    int
	parallelVerify bool
	constantTime   bool
	logger         *slog.Logger
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithProvider sets the hash and random source.
func WithProvider(p Provider) Option {
	return func(s *Scheme) { s.provider = p }
}

// WithParallelism bounds the number of goroutines hashing concurrently. Values
// below 1 mean runtime.GOMAXPROCS(0). With 1, every operation hashes
// sequentially.
func WithParallelism(n int) Option {
	return func(s *Scheme) { s.parallelism = n }
}

// WithParallelVerify makes verification hash the signature words
// concurrently and compare them once all are hashed. Any mismatching word
// still makes the signature invalid.
func WithParallelVerify() Option {
	return func(s *Scheme) { s.parallelVerify = true }
}

// WithConstantTimeVerify makes verification hash and compare every word and
// fold the results, instead of returning at the first mismatching word. The
// result is the same; only the timing differs.
func WithConstantTimeVerify() Option {
	return func(s *Scheme) { s.constantTime = true }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheme) { s.logger = l }
}

// New returns a Scheme. Without options it hashes with SHA-256, reads from
// crypto/rand, spreads key generation over GOMAXPROCS goroutines and
// verifies sequentially, stopping at the first mismatching word.
func New(opts ...Option) *Scheme {
	s := &Scheme{}
	for _, o := range opts {
		o(s)
	}
	if s.provider == nil {
		p, err := crypto.NewProvider(crypto.SHA256, nil)
		if err != nil {
			panic(err) // SHA-256 is always registered
		}
		s.provider = p
	}
	if s.parallelism < 1 {
		s.parallelism = runtime.GOMAXPROCS(0)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// digest hashes data and checks the provider kept its size contract.
func (s *Scheme) digest(data []byte) ([]byte, error) {
	d, err := s.provider.Digest(data)
	if err != nil {
		return nil, err
	}
	if len(d) != WordLen {
		return nil, fmt.Errorf("provider returned %d-byte digest, want %d", len(d), WordLen)
	}
	return d, nil
}

var defaultScheme = New()
