// Package main provides the entry point for the Framelytics CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for Framelytics.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "framelytics",
		Short: "SEO and accessibility audit for page markup",
		Long: `Framelytics audits page markup for SEO, accessibility, and link
integrity problems. It normalizes the markup into a node list, runs a
fixed set of checkers over it, and scores the result per category and
overall on a 0-100 scale.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
