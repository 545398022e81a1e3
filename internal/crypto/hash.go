package crypto

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Size is the output length of every supported digest, in bytes.
const Size = 32

// Algorithm names accepted by NewHash.
const (
	SHA256     = "SHA-256"
	BLAKE2b256 = "BLAKE2b-256"
	SHA3_256   = "SHA3-256"
)

// ErrUnsupportedAlgorithm is returned when a digest algorithm is requested
// that is not one of the 256-bit functions above.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Hash computes a Size-byte digest of data.
type Hash func(data []byte) [Size]byte

var hashes = map[string]Hash{
	SHA256:     sha256.Sum256,
	BLAKE2b256: blake2b.Sum256,
	SHA3_256:   sha3.Sum256,
}

// NewHash returns the digest function called alg. Names are matched
// case-insensitively.
func NewHash(alg string) (Hash, error) {
	for name, h := range hashes {
		if strings.EqualFold(name, alg) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
}

// Algorithms lists the accepted algorithm names in sorted order.
func Algorithms() []string {
	out := make([]string, 0, len(hashes))
	for name := range hashes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
