package commands_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kriegslustig/lamport"
	"github.com/Kriegslustig/lamport/cmd/lamport/commands"
)

// run executes the CLI with args against home and returns stdout.
func run(t *testing.T, home string, stdin []byte, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(bytes.NewReader(stdin))
	root.SetArgs(append([]string{"--home", home, "--log-format", "json"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestKeygenSignVerify(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, nil, "keygen", "alice")
	require.NoError(t, err)
	require.Contains(t, out, "Fingerprint: ")

	fp, err := run(t, home, nil, "fingerprint", "alice")
	require.NoError(t, err)
	require.Contains(t, out, strings.TrimPrefix(strings.TrimSpace(fp), "Fingerprint: "))

	msgPath := filepath.Join(home, "msg.txt")
	require.NoError(t, os.WriteFile(msgPath, []byte("hello"), 0o600))
	signedPath := filepath.Join(home, "msg.signed")
	_, err = run(t, home, nil, "sign", "alice", msgPath, "--out", signedPath)
	require.NoError(t, err)

	signed, err := os.ReadFile(signedPath)
	require.NoError(t, err)
	require.Len(t, signed, 5+lamport.SignatureLen)

	out, err = run(t, home, nil, "verify", "alice", signedPath)
	require.NoError(t, err)
	require.Equal(t, "OK\n", out)

	out, err = run(t, home, signed, "verify", "alice", "--extract", "-")
	require.NoError(t, err)
	require.Equal(t, "hello", out)

	signed[1] ^= 0x01
	_, err = run(t, home, signed, "verify", "alice")
	require.Error(t, err)
}

func TestSignStdin(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, nil, "keygen", "k")
	require.NoError(t, err)

	out, err := run(t, home, []byte{1, 2, 3}, "sign", "k")
	require.NoError(t, err)
	require.Len(t, out, 3+lamport.SignatureLen)

	_, err = run(t, home, []byte(out), "verify", "k", "-")
	require.NoError(t, err)
}

func TestSignVerifyDigest(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, nil, "keygen", "d")
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("digest me"))
	digest := hex.EncodeToString(sum[:])
	sigPath := filepath.Join(home, "d.sig")

	_, err = run(t, home, nil, "sign-digest", "d", digest, "-o", sigPath)
	require.NoError(t, err)

	out, err := run(t, home, nil, "verify-digest", "d", digest, sigPath)
	require.NoError(t, err)
	require.Equal(t, "OK\n", out)

	other := sha256.Sum256([]byte("something else"))
	_, err = run(t, home, nil, "verify-digest", "d", hex.EncodeToString(other[:]), sigPath)
	require.Error(t, err)
}

func TestSignDigest_WrongLength(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, nil, "keygen", "d")
	require.NoError(t, err)

	_, err = run(t, home, nil, "sign-digest", "d", "abcd")
	require.ErrorIs(t, err, lamport.ErrInvalidInputLength)
}

func TestVerify_ShortInput(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, nil, "keygen", "k")
	require.NoError(t, err)

	_, err = run(t, home, []byte("too short"), "verify", "k")
	require.ErrorIs(t, err, lamport.ErrInvalidInputLength)
}

func TestKeygen_Duplicate(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, nil, "keygen", "k")
	require.NoError(t, err)
	_, err = run(t, home, nil, "keygen", "k")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	home := t.TempDir()
	for _, n := range []string{"b", "a"} {
		_, err := run(t, home, nil, "keygen", n)
		require.NoError(t, err)
	}
	out, err := run(t, home, nil, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "a\t"))
	require.True(t, strings.HasPrefix(lines[1], "b\t"))
}

func TestHashFlag(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, nil, "--hash", "BLAKE2b-256", "keygen", "b2")
	require.NoError(t, err)

	signed, err := run(t, home, []byte("m"), "--hash", "BLAKE2b-256", "sign", "b2")
	require.NoError(t, err)

	_, err = run(t, home, []byte(signed), "--hash", "BLAKE2b-256", "verify", "b2")
	require.NoError(t, err)

	// same signed message, wrong digest algorithm
	_, err = run(t, home, []byte(signed), "verify", "b2")
	require.Error(t, err)

	_, err = run(t, home, nil, "--hash", "MD5", "list")
	require.ErrorIs(t, err, lamport.ErrUnsupportedAlgorithm)
}
