// log.go implements the "chtools log" command for reading the audit log.

package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/jpl-au/chtools/cmd"
	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/jpl-au/chtools/internal/validate"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent audit log entries",
		Long: `Show recent lookups from the local audit log, newest first.

  chtools log                       # last 20 entries
  chtools log --company 1234567     # entries for one company
  chtools log --source mcp: --failed

Entries never include the API key.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum entries")
	c.Flags().String(extension.FlagCompany, "", "Only entries for this company number")
	c.Flags().String(extension.FlagSource, "", "Only entries whose source starts with this (e.g. mcp:)")
	c.Flags().Bool(extension.FlagFailed, false, "Only failed entries")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	var opts log.QueryOptions
	opts.Limit, _ = c.Flags().GetInt(extension.FlagLimit)
	opts.Source, _ = c.Flags().GetString(extension.FlagSource)
	opts.Failed, _ = c.Flags().GetBool(extension.FlagFailed)
	if company, _ := c.Flags().GetString(extension.FlagCompany); company != "" {
		n, err := validate.CompanyNumber(company)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		opts.Company = n
	}

	entries, err := log.Recent(opts)
	if errors.Is(err, log.ErrNotOpen) {
		err = fmt.Errorf("%w (is audit.enabled false?)", err)
	}
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return cmd.PrintJSON(entries)
	}
	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = e.Code
			if status == "" {
				status = "FAILED"
			}
		}
		subject := e.Company
		if subject == "" {
			subject = e.Query
		}
		if subject == "" {
			subject = "-"
		}
		fmt.Fprintf(cmd.Out(), "%s  %-32s  %-10s  %-20s  %s\n",
			time.UnixMilli(e.Start).Format("2006-01-02 15:04:05"),
			e.Source, subject, status, e.RequestID)
	}
	return nil
}
