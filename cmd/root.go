/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE builds the company service lazily - only
// commands that look companies up trigger extension init. This lets
// standalone commands (guide, config, version) work with a broken config
// file, so the user can still read the guide and repair it. The
// standaloneCommands map controls which commands skip initialisation.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/chtools/internal/config"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chtools",
	Short: "Companies House lookups and company reports for people and LLMs",
	Long:  `Search the UK Companies House register, fetch company records, and build a single report with officers, beneficial owners and an ownership estimate. Runs as a CLI or as an MCP server.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Initialise extensions for commands that need the service
		if !standaloneCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": "EXCEPTION", "message": err.Error()})
					cmd.SilenceErrors = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "chtools report 01234567", returns "report".
// For "chtools config serve.addr :9000", returns "config".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging unless disabled in config, registers extensions and
// executes the command. Exit code 1 indicates error.
func Execute() {
	if auditEnabled() {
		// Warn if it fails, but continue
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}
	}
	defer log.Close()

	registerExtensions()
	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// auditEnabled reports whether audit.enabled is on. A config that fails to
// load leaves auditing on; the load error surfaces when the command runs.
func auditEnabled() bool {
	cfg, err := config.Load()
	if err != nil {
		return true
	}
	return cfg.AuditEnabled()
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
