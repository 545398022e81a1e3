package crypto

import (
	"crypto/rand"
	"io"
)

// Provider bundles a digest function with a secure random source.
// It is safe for concurrent use if its random source is.
type Provider struct {
	alg  string
	hash Hash
	rand io.Reader
}

// NewProvider returns a Provider hashing with alg and reading randomness from
// r. A nil r means crypto/rand.Reader.
func NewProvider(alg string, r io.Reader) (*Provider, error) {
	h, err := NewHash(alg)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.Reader
	}
	return &Provider{alg: alg, hash: h, rand: r}, nil
}

// Algorithm returns the name the provider was created with.
func (p *Provider) Algorithm() string { return p.alg }

// Digest returns the Size-byte digest of data.
func (p *Provider) Digest(data []byte) ([]byte, error) {
	sum := p.hash(data)
	return sum[:], nil
}

// Fill fills buf with bytes from the random source. A short read is an
// error.
func (p *Provider) Fill(buf []byte) error {
	_, err := io.ReadFull(p.rand, buf)
	return err
}
