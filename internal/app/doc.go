// Package app wires application dependencies for the CLI.
//
// It loads Config through viper (flags, LAMPORT_* environment variables and
// an optional config file) and builds the logger, the signing scheme and the
// key store from it, exposing them via the App struct for commands to use.
package app
