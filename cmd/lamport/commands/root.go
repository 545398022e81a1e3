package commands

import (
	"github.com/spf13/cobra"

	"github.com/Kriegslustig/lamport/internal/app"
)

var appCtx *app.App

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with a fresh configuration.
func NewRootCmd() *cobra.Command {
	v := app.NewViper()

	root := &cobra.Command{
		Use:          "lamport",
		Short:        "Lamport one-time signatures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			a, err := app.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String(app.KeyHome, "", "config and key dir (default ~/.lamport)")
	flags.String(app.KeyHash, "", "digest algorithm: SHA-256, BLAKE2b-256 or SHA3-256 (default SHA-256)")
	flags.Int(app.KeyParallelism, 0, "concurrent hash calls (default GOMAXPROCS)")
	flags.Bool(app.KeyConstantTime, false, "compare every signature word when verifying")
	flags.String(app.KeyLogLevel, "", "log level: debug, info, warn, error (default info)")
	flags.String(app.KeyLogFormat, "", "log format: text or json (default text)")
	for _, key := range []string{app.KeyHome, app.KeyHash, app.KeyParallelism, app.KeyConstantTime, app.KeyLogLevel, app.KeyLogFormat} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		keygenCmd(),
		listCmd(),
		fingerprintCmd(),
		signCmd(),
		verifyCmd(),
		signDigestCmd(),
		verifyDigestCmd(),
	)
	return root
}
