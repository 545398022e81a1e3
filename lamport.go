package lamport

import "context"

// GenerateKeyPair generates a key pair with SHA-256 and crypto/rand.
func GenerateKeyPair(ctx context.Context) (*KeyPair, error) {
	return defaultScheme.GenerateKeyPair(ctx)
}

// GenerateSignature signs a 32-byte digest with sk.
func GenerateSignature(sk *SecretKey, digest []byte) (*Signature, error) {
	return defaultScheme.GenerateSignature(sk, digest)
}

// VerifySignature checks sig over a 32-byte digest, hashing with SHA-256.
func VerifySignature(ctx context.Context, pk *PublicKey, digest []byte, sig *Signature) (bool, error) {
	return defaultScheme.VerifySignature(ctx, pk, digest, sig)
}

// Sign returns message followed by the signature of its SHA-256 digest.
func Sign(sk *SecretKey, message []byte) ([]byte, error) {
	return defaultScheme.Sign(sk, message)
}

// Verify checks a signed message produced by Sign.
func Verify(ctx context.Context, pk *PublicKey, signed []byte) (bool, error) {
	return defaultScheme.Verify(ctx, pk, signed)
}
