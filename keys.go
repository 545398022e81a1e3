package lamport

import (
	"fmt"

	"github.com/Kriegslustig/lamport/internal/crypto"
)

// SecretKey is 512 random words: half 0 (words 0..255) followed by half 1.
//
// A SecretKey must sign at most one digest.
type SecretKey [KeyLen]byte

// PublicKey holds the hash of every secret-key word, at the same position.
type PublicKey [KeyLen]byte

// Signature is 256 words; word i is the secret word revealed for digest
// bit i.
type Signature [SignatureLen]byte

// KeyPair is a freshly generated secret key and its public key.
type KeyPair struct {
	Secret *SecretKey
	Public *PublicKey
}

// word returns word i of half b of a key laid out as two KeyPartLen halves.
func word(key []byte, b uint8, i int) []byte {
	off := int(b)*KeyPartLen + i*WordLen
	return key[off : off+WordLen]
}

// Half returns half b (0 or 1) of the key.
func (k *SecretKey) Half(b uint8) []byte {
	return k[int(b)*KeyPartLen : (int(b)+1)*KeyPartLen]
}

// Word returns word i of half b.
func (k *SecretKey) Word(b uint8, i int) []byte { return word(k[:], b, i) }

// Bytes returns the raw key; the slice aliases k.
func (k *SecretKey) Bytes() []byte { return k[:] }

// Wipe zeroes the key.
func (k *SecretKey) Wipe() { crypto.Wipe(k[:]) }

// Half returns half b (0 or 1) of the key.
func (k *PublicKey) Half(b uint8) []byte {
	return k[int(b)*KeyPartLen : (int(b)+1)*KeyPartLen]
}

// Word returns word i of half b.
func (k *PublicKey) Word(b uint8, i int) []byte { return word(k[:], b, i) }

// Bytes returns the raw key; the slice aliases k.
func (k *PublicKey) Bytes() []byte { return k[:] }

// Fingerprint returns a short hex identifier of the key for display.
func (k *PublicKey) Fingerprint() string { return crypto.Fingerprint(k[:]) }

// Word returns word i of the signature.
func (s *Signature) Word(i int) []byte { return s[i*WordLen : (i+1)*WordLen] }

// Bytes returns the raw signature; the slice aliases s.
func (s *Signature) Bytes() []byte { return s[:] }

// SecretKeyFromBytes copies a raw KeyLen-byte secret key.
func SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	if len(b) != KeyLen {
		return nil, fmt.Errorf("%w: secret key is %d bytes, want %d", ErrInvalidInputLength, len(b), KeyLen)
	}
	sk := new(SecretKey)
	copy(sk[:], b)
	return sk, nil
}

// PublicKeyFromBytes copies a raw KeyLen-byte public key.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != KeyLen {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidInputLength, len(b), KeyLen)
	}
	pk := new(PublicKey)
	copy(pk[:], b)
	return pk, nil
}

// SignatureFromBytes copies a raw SignatureLen-byte signature.
func SignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != SignatureLen {
		return nil, fmt.Errorf("%w: signature is %d bytes, want %d", ErrInvalidInputLength, len(b), SignatureLen)
	}
	sig := new(Signature)
	copy(sig[:], b)
	return sig, nil
}
