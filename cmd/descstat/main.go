// Package main provides the entry point for the descstat CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/descstat/cmd/descstat/commands"
	"github.com/Sumatoshi-tech/descstat/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := commands.NewRootCommand()
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		// Malformed input already produced its one-line diagnostic on
		// stderr; anything else gets the generic error line.
		if !errors.Is(err, commands.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "descstat %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
