// Package lamport implements the Lamport one-time signature scheme over
// 256-bit digests.
//
// A key pair is generated with [GenerateKeyPair]. The secret key is 512
// random 32-byte words split into two halves of 256 words; the public key
// holds the hash of every secret word at the same position. To sign a
// 32-byte digest, [GenerateSignature] reveals, for every digest bit i
// (most significant bit of byte 0 first), word i of the first half when the
// bit is 0 and word i of the second half when it is 1. [VerifySignature]
// hashes each revealed word and compares it with the matching public-key
// word.
//
// [Sign] and [Verify] work on messages of any length: the message is hashed
// to a digest first, and the signed message is the message bytes followed by
// the signature.
//
// Lamport keys are one time use. A secret key must not sign more than one
// digest: every signature reveals half of the secret words, and a second
// signature over a different digest lets anyone forge further signatures.
// Nothing in this package tracks whether a key has been used.
//
// All byte layouts are fixed:
//
//	SecretKey / PublicKey  16384 bytes  half 0 (256 words), then half 1 (256 words)
//	Signature               8192 bytes  256 words, word i revealed for digest bit i
//	Signed message     len(m) + 8192    message bytes, then signature bytes
//
// The hash function and the random source are supplied by a [Provider]. The
// default provider hashes with SHA-256 and reads from crypto/rand.
package lamport
