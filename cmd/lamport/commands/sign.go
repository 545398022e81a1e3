package commands

import (
	"github.com/spf13/cobra"
)

// sign <name> [file]: sign a message with a stored secret key.
func signCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sign <name> [file]",
		Short: "Sign a message; output is the message followed by the signature",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			msg, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			sk, err := appCtx.Keys.LoadSecret(name)
			if err != nil {
				return err
			}
			defer sk.Wipe()

			signed, err := appCtx.Scheme.Sign(sk, msg)
			if err != nil {
				return err
			}
			appCtx.Logger.Info("message signed", "key", name, "bytes", len(msg))
			return writeOutput(cmd, out, signed)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the signed message here (default stdout)")
	return cmd
}

// sign-digest <name> <hex>: sign a raw 32-byte digest.
func signDigestCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sign-digest <name> <hex-digest>",
		Short: "Sign a 32-byte digest given in hex; output is the raw signature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			digest, err := parseDigest(args[1])
			if err != nil {
				return err
			}
			sk, err := appCtx.Keys.LoadSecret(name)
			if err != nil {
				return err
			}
			defer sk.Wipe()

			sig, err := appCtx.Scheme.GenerateSignature(sk, digest)
			if err != nil {
				return err
			}
			appCtx.Logger.Info("digest signed", "key", name)
			return writeOutput(cmd, out, sig.Bytes())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the signature here (default stdout)")
	return cmd
}
