// Package commands defines the lamport CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen         Generate and store a one-time key pair
//   - list           List stored keys with their fingerprints
//   - fingerprint    Print a public key fingerprint
//   - sign           Sign a message (file or stdin)
//   - verify         Verify a signed message
//   - sign-digest    Sign a raw 32-byte digest
//   - verify-digest  Verify a signature over a raw 32-byte digest
//
// # Implementation
//
// The root command loads the configuration through viper (flags,
// LAMPORT_* environment variables, <home>/config.yaml) and builds the app
// context (scheme, key store, logger) before any subcommand runs.
//
// Every secret key signs at most one message. The CLI does not track which
// keys were used; generate a fresh key for every signature.
package commands
