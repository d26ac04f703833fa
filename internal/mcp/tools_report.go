// tools_report.go implements the generate_company_report tool.

package mcp

import (
	"context"
	"slices"

	"github.com/jpl-au/chtools/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// generateReport handles generate_company_report tool calls. A report with
// unavailable sections is still a success; the sections are named in the
// audit entry.
func (h *handlers) generateReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := getString(req, argCompanyNumber, "")
	l := log.Event("mcp:"+ToolReport, "report").Company(n)

	r, err := h.svc.Report(ctx, getString(req, argAPIKey, ""), n)
	if err == nil {
		l.Detail("officers", len(r.ActiveOfficers)).Detail("owners", len(r.BeneficialOwners))
		if len(r.Unavailable) > 0 {
			sections := make([]string, 0, len(r.Unavailable))
			for s := range r.Unavailable {
				sections = append(sections, s)
			}
			slices.Sort(sections)
			l.Detail("unavailable", sections)
		}
	}
	return finish(l, r, err)
}
