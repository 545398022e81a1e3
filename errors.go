package lamport

import (
	"errors"

	"github.com/Kriegslustig/lamport/internal/crypto"
)

var (
	// ErrInvalidInputLength is returned when a digest is not WordLen bytes,
	// a signed message is shorter than SignatureLen, or a raw key or
	// signature has the wrong size.
	ErrInvalidInputLength = errors.New("lamport: invalid input length")

	// ErrUnsupportedAlgorithm is returned when a provider is requested for a
	// digest algorithm other than the supported 256-bit ones.
	ErrUnsupportedAlgorithm = crypto.ErrUnsupportedAlgorithm
)
