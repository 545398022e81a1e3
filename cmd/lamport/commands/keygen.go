package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen <name>",
		Short: "Generate a one-time key pair and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			kp, err := appCtx.Scheme.GenerateKeyPair(cmd.Context())
			if err != nil {
				return err
			}
			defer kp.Secret.Wipe()

			if err := appCtx.Keys.Save(name, kp); err != nil {
				return err
			}
			appCtx.Logger.Info("key pair created", "key", name, "dir", appCtx.Keys.Dir())
			fmt.Fprintf(cmd.OutOrStdout(), "Key pair %q created.\nFingerprint: %s\n", name, kp.Public.Fingerprint())
			return nil
		},
	}
}
