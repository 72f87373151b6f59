// Package cli implements the TableShare command-line interface using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tableshare",
	Short: "TableShare — community engagement backend for hunger relief",
	Long: `TableShare powers the community website of a hunger-relief nonprofit:
the engagement engine (points, levels, streaks, tasks), volunteer signups,
the live donation counter, and the partner map data.

Run 'tableshare serve' to start the API server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
