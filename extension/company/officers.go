// officers.go implements the "chtools officers" and "chtools filings"
// commands, the paged lookups.

package company

import (
	"context"

	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/format"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/spf13/cobra"
)

func pagingFlags(c *cobra.Command, key string) {
	c.Flags().Int(extension.FlagItems, 0, "Results per page (default "+key+")")
	c.Flags().Int(extension.FlagStartIndex, 0, "Zero-based index of the first result")
}

func pageOptions(c *cobra.Command) companieshouse.PageOptions {
	var opts companieshouse.PageOptions
	opts.ItemsPerPage, _ = c.Flags().GetInt(extension.FlagItems)
	opts.StartIndex, _ = c.Flags().GetInt(extension.FlagStartIndex)
	return opts
}

func (e *Extension) newOfficersCmd() *cobra.Command {
	c := companyCmd("officers", "List a company's officers",
		`List directors, secretaries and LLP members, current and resigned.`,
		func(c *cobra.Command, n string) error {
			opts := pageOptions(c)
			fetch := func(ctx context.Context, key, n string) (*companieshouse.OfficerList, error) {
				return e.svc.Officers(ctx, key, n, opts)
			}
			return lookup(c.Context(), "officers", n, fetch, format.Officers,
				log.Event("company:officers", "officers").Company(n))
		})
	pagingFlags(c, "officers.items_per_page")
	return c
}

func (e *Extension) newFilingsCmd() *cobra.Command {
	c := companyCmd("filings", "List a company's filing history",
		`List filings, newest first.

  chtools filings 1234567
  chtools filings 1234567 --category accounts,confirmation-statement`,
		func(c *cobra.Command, n string) error {
			page := pageOptions(c)
			opts := companieshouse.FilingOptions{ItemsPerPage: page.ItemsPerPage, StartIndex: page.StartIndex}
			opts.Category, _ = c.Flags().GetString(extension.FlagCategory)

			l := log.Event("company:filings", "filings").Company(n)
			if opts.Category != "" {
				l.Detail("category", opts.Category)
			}
			fetch := func(ctx context.Context, key, n string) (*companieshouse.FilingHistory, error) {
				return e.svc.FilingHistory(ctx, key, n, opts)
			}
			return lookup(c.Context(), "filings", n, fetch, format.Filings, l)
		})
	pagingFlags(c, "filings.items_per_page")
	c.Flags().String(extension.FlagCategory, "", "Comma-separated filing categories")
	return c
}
