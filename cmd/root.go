// Package cmd implements the CLI commands for the catalog parser using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "catalog — parse registrar subject listings into structured course records",
	Long: `catalog reconstructs structured course records from the registrar's
loosely formatted subject listing pages: one record per subject with its
identifier, title, units, schedule, prerequisites, instructors and more.

Usage:
  catalog parse [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
