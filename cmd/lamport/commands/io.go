package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kriegslustig/lamport"
)

var errInvalidSignature = errors.New("signature is not valid")

// readInput reads the file named by args[i], or stdin when it is absent or "-".
func readInput(cmd *cobra.Command, args []string, i int) ([]byte, error) {
	if len(args) <= i || args[i] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[i])
}

// writeOutput writes b to path, or stdout when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// parseDigest decodes a hex digest, which must be exactly 32 bytes.
func parseDigest(s string) ([]byte, error) {
	d, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}
	if len(d) != lamport.WordLen {
		return nil, fmt.Errorf("%w: digest is %d bytes, want %d", lamport.ErrInvalidInputLength, len(d), lamport.WordLen)
	}
	return d, nil
}
