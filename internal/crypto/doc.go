// Package crypto exposes the primitives the Lamport scheme is built on.
//
// Contents
//
//   - 256-bit digest functions selected by name (NewHash): SHA-256,
//     BLAKE2b-256 and SHA3-256
//   - A hash + secure random source capability (Provider, NewProvider)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Every digest function returns exactly Size bytes. Asking for any other
// algorithm fails with ErrUnsupportedAlgorithm.
package crypto
