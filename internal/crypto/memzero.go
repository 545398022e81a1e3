package crypto

import "github.com/Kriegslustig/lamport/internal/util/memzero"

// Wipe zeroes the provided buffer. This is best-effort: copies the runtime
// or the caller made are not reached.
func Wipe(b []byte) {
	memzero.Zero(b)
}
