// search.go implements the "chtools search" command.

package company

import (
	"fmt"
	"strings"

	"github.com/jpl-au/chtools/cmd"
	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/format"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/spf13/cobra"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search companies by name or number",
		Long: `Search the register by company name or number.

  chtools search acme widgets
  chtools search acme --items 20 --start-index 20`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().Int(extension.FlagItems, 0, "Results per page (default search.items_per_page)")
	c.Flags().Int(extension.FlagStartIndex, 0, "Zero-based index of the first result")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	q := strings.Join(args, " ")
	var opts companieshouse.SearchOptions
	opts.ItemsPerPage, _ = c.Flags().GetInt(extension.FlagItems)
	opts.StartIndex, _ = c.Flags().GetInt(extension.FlagStartIndex)

	l := log.Event("company:search", "search").Query(q)
	res, err := e.svc.Search(c.Context(), cmd.APIKey(), q, opts)
	if err != nil {
		l.Code(service.ErrorCode(err)).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("search %q: %w", q, err))
	}
	l.Detail("count", len(res.Items)).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(res)
	}
	return format.SearchResults(cmd.Out(), res)
}
