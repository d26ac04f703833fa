// vacuum.go implements "chtools vacuum", which trims the audit log.
//
// Deletion is permanent, so the command asks before acting unless --force,
// --dry-run or JSON output is in effect.

package core

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jpl-au/chtools/cmd"
	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/duration"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/spf13/cobra"
)

func newVacuumCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "vacuum",
		Short: "Permanently delete old audit log entries",
		Long: `Permanently delete audit log entries older than a duration.

This is irreversible. Use --force to skip confirmation.

Durations: 30d (days), 6w (weeks), 3m (months), 1y (years)`,
		Args: cobra.NoArgs,
		RunE: runVacuum,
	}
	c.Flags().String(extension.FlagOlderThan, "3m", "Delete entries older than this (30d, 6w, 3m, 1y)")
	c.Flags().BoolP(extension.FlagDryRun, "n", false, "Show what would be deleted")
	c.Flags().Bool(extension.FlagForce, false, "Skip confirmation")
	return c
}

func runVacuum(c *cobra.Command, _ []string) error {
	olderThan, _ := c.Flags().GetString(extension.FlagOlderThan)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	force, _ := c.Flags().GetBool(extension.FlagForce)

	cutoff, err := duration.Before(olderThan, time.Now())
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if !dryRun && !force && !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Permanently delete audit entries before %s? This cannot be undone. [y/N] ", cutoff.Format("2006-01-02"))
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.Out(), "Cancelled")
			return nil
		}
	}

	n, err := log.Prune(cutoff, dryRun)
	if errors.Is(err, log.ErrNotOpen) {
		err = fmt.Errorf("%w (is audit.enabled false?)", err)
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("vacuum: %w", err))
	}

	log.Event("core:vacuum", "vacuum").
		Detail("dry_run", dryRun).
		Detail("count", n).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"deleted": n, "dry_run": dryRun, "before": cutoff.Format(time.RFC3339)})
	}
	verb := "Deleted"
	if dryRun {
		verb = "Would delete"
	}
	fmt.Fprintf(cmd.Out(), "%s %d entr%s\n", verb, n, plural(n))
	return nil
}

func plural(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
