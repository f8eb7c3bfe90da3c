package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gaborage/apicontract/internal/commands"
)

var version = "dev" // Will be set during build

func main() {
	rootCmd := commands.NewRootCommand(version)

	if err := rootCmd.Execute(); err != nil {
		// Drift has already been reported on stdout.
		if !errors.Is(err, commands.ErrContractDrift) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
