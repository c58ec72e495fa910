package main

import (
	"fmt"
	"os"

	"taskboard/internal/cli"
	"taskboard/internal/config"
)

func main() {
	// Flags and environment are applied by the root command before any
	// subcommand runs
	cfg := config.NewConfig()

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
