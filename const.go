package lamport

const (
	// WordLen is the size of one key or signature word, equal to the digest
	// size.
	WordLen = 32
	// DigestBits is the number of bits in a signed digest; there is one word
	// pair per bit.
	DigestBits = WordLen * 8
	// KeyPartLen is the size of one half of a secret or public key.
	KeyPartLen = WordLen * DigestBits
	// KeyLen is the size of a secret or public key.
	KeyLen = 2 * KeyPartLen
	// SignatureLen is the size of a signature.
	SignatureLen = DigestBits * WordLen
)
