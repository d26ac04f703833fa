// Package company provides the Companies House lookup commands.
// Registers commands: search, profile, officers, filings, charges,
// insolvency, psc, address, report.
//
// Every command resolves the API key per invocation with cmd.APIKey() and
// hands it to the service for that call only.
package company

import (
	"context"
	"fmt"
	"io"

	"github.com/jpl-au/chtools/cmd"
	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the company extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "company" - this extension provides the lookup commands.
func (e *Extension) Name() string { return "company" }

// Init connects to the shared service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns one command per lookup plus report.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newSearchCmd(),
		e.newProfileCmd(),
		e.newOfficersCmd(),
		e.newFilingsCmd(),
		e.newChargesCmd(),
		e.newInsolvencyCmd(),
		e.newPSCCmd(),
		e.newAddressCmd(),
		e.newReportCmd(),
	}
}

// MCPTools returns nil - company MCP tools are in internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// lookup runs a single-company fetch, writes the audit entry and prints the
// result as JSON or text.
func lookup[T any](
	ctx context.Context,
	action, number string,
	fetch func(ctx context.Context, apiKey, number string) (T, error),
	text func(io.Writer, T) error,
	l *log.Builder,
) error {
	res, err := fetch(ctx, cmd.APIKey(), number)
	if err != nil {
		l.Code(service.ErrorCode(err)).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("%s %s: %w", action, number, err))
	}
	l.Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(res)
	}
	return text(cmd.Out(), res)
}

// companyCmd builds a command taking one company number.
func companyCmd(use, short, long string, run func(c *cobra.Command, number string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <company-number>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, args[0])
		},
	}
}
