package crypto_test

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/Kriegslustig/lamport/internal/crypto"
)

func TestNewHash_KnownAlgorithms(t *testing.T) {
	data := []byte("lamport")
	cases := []struct {
		alg  string
		want [32]byte
	}{
		{crypto.SHA256, stdsha256.Sum256(data)},
		{"sha-256", stdsha256.Sum256(data)},
		{crypto.BLAKE2b256, blake2b.Sum256(data)},
		{crypto.SHA3_256, sha3.Sum256(data)},
	}
	for _, tc := range cases {
		t.Run(tc.alg, func(t *testing.T) {
			h, err := crypto.NewHash(tc.alg)
			require.NoError(t, err)
			require.Equal(t, tc.want, h(data))
		})
	}
}

func TestNewHash_Unsupported(t *testing.T) {
	for _, alg := range []string{"", "MD5", "SHA-512", "SHA-1"} {
		h, err := crypto.NewHash(alg)
		require.Nil(t, h)
		require.True(t, errors.Is(err, crypto.ErrUnsupportedAlgorithm), "alg %q: %v", alg, err)
	}
}

func TestAlgorithms_Sorted(t *testing.T) {
	require.Equal(t, []string{crypto.BLAKE2b256, crypto.SHA256, crypto.SHA3_256}, crypto.Algorithms())
}

func TestProvider_DigestAndFill(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0x7f}, 64))
	p, err := crypto.NewProvider(crypto.SHA256, src)
	require.NoError(t, err)
	require.Equal(t, crypto.SHA256, p.Algorithm())

	d, err := p.Digest([]byte{1, 2, 3})
	require.NoError(t, err)
	want := stdsha256.Sum256([]byte{1, 2, 3})
	require.Equal(t, want[:], d)

	buf := make([]byte, 64)
	require.NoError(t, p.Fill(buf))
	require.Equal(t, bytes.Repeat([]byte{0x7f}, 64), buf)

	// source is exhausted now
	require.Error(t, p.Fill(buf))
}

func TestProvider_DefaultRandom(t *testing.T) {
	p, err := crypto.NewProvider(crypto.BLAKE2b256, nil)
	require.NoError(t, err)

	a := make([]byte, 32)
	b := make([]byte, 32)
	require.NoError(t, p.Fill(a))
	require.NoError(t, p.Fill(b))
	require.NotEqual(t, a, b)
}

func TestNewProvider_Unsupported(t *testing.T) {
	_, err := crypto.NewProvider("whirlpool", nil)
	require.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)
}

func TestFingerprint(t *testing.T) {
	fp := crypto.Fingerprint([]byte("pub"))
	require.Len(t, fp, 20)
	require.Equal(t, fp, crypto.Fingerprint([]byte("pub")))
	require.NotEqual(t, fp, crypto.Fingerprint([]byte("pub2")))
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Wipe(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
	crypto.Wipe(nil)
}
