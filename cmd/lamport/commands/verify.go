package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kriegslustig/lamport"
)

// verify <name> [file]: verify a signed message against a stored public key.
func verifyCmd() *cobra.Command {
	var extract string
	cmd := &cobra.Command{
		Use:   "verify <name> [file]",
		Short: "Verify a signed message",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			signed, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			pk, err := appCtx.Keys.LoadPublic(name)
			if err != nil {
				return err
			}

			ok, err := appCtx.Scheme.Verify(cmd.Context(), pk, signed)
			if err != nil {
				return err
			}
			if !ok {
				appCtx.Logger.Warn("signature rejected", "key", name)
				return errInvalidSignature
			}
			appCtx.Logger.Info("signature verified", "key", name)

			if extract != "" {
				msg, _, err := lamport.SplitSignedMessage(signed)
				if err != nil {
					return err
				}
				return writeOutput(cmd, extract, msg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&extract, "extract", "", "write the verified message here instead of printing OK (- for stdout)")
	return cmd
}

// verify-digest <name> <hex> <sigfile>: verify a raw signature over a digest.
func verifyDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-digest <name> <hex-digest> [sigfile]",
		Short: "Verify a raw signature over a 32-byte digest given in hex",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			digest, err := parseDigest(args[1])
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, args, 2)
			if err != nil {
				return err
			}
			sig, err := lamport.SignatureFromBytes(raw)
			if err != nil {
				return err
			}
			pk, err := appCtx.Keys.LoadPublic(name)
			if err != nil {
				return err
			}

			ok, err := appCtx.Scheme.VerifySignature(cmd.Context(), pk, digest, sig)
			if err != nil {
				return err
			}
			if !ok {
				appCtx.Logger.Warn("signature rejected", "key", name)
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}
