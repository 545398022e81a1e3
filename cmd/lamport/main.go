package main

import (
	"os"

	"github.com/Kriegslustig/lamport/cmd/lamport/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
