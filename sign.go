package lamport

import (
	"fmt"

	"github.com/Kriegslustig/lamport/internal/bitseq"
)

// GenerateSignature signs a WordLen-byte digest: for digest bit i it copies
// word i of secret-key half 0 or half 1 into signature word i. The result is
// deterministic and sk is not modified.
//
// A digest of any other length fails with ErrInvalidInputLength.
func (s *Scheme) GenerateSignature(sk *SecretKey, digest []byte) (*Signature, error) {
	if len(digest) != WordLen {
		return nil, fmt.Errorf("%w: digest is %d bytes, want %d", ErrInvalidInputLength, len(digest), WordLen)
	}

	sig := new(Signature)
	for i, b := range bitseq.Bits(digest) {
		copy(sig.Word(i), sk.Word(b, i))
	}
	return sig, nil
}

// Sign hashes message and returns the signed message: the message bytes
// followed by the signature of the digest.
func (s *Scheme) Sign(sk *SecretKey, message []byte) ([]byte, error) {
	d, err := s.digest(message)
	if err != nil {
		return nil, fmt.Errorf("lamport: hashing message: %w", err)
	}
	sig, err := s.GenerateSignature(sk, d)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(message)+SignatureLen)
	out = append(out, message...)
	return append(out, sig[:]...), nil
}

// SplitSignedMessage splits a signed message into the message and its
// signature. Anything shorter than SignatureLen fails with
// ErrInvalidInputLength.
func SplitSignedMessage(signed []byte) (message []byte, sig *Signature, err error) {
	if len(signed) < SignatureLen {
		return nil, nil, fmt.Errorf("%w: signed message is %d bytes, want at least %d", ErrInvalidInputLength, len(signed), SignatureLen)
	}
	cut := len(signed) - SignatureLen
	sig, err = SignatureFromBytes(signed[cut:])
	if err != nil {
		return nil, nil, err
	}
	return signed[:cut], sig, nil
}
