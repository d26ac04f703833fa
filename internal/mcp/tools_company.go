// tools_company.go registers the Companies House tools and implements the
// single-call passthroughs.
//
// Tool and argument names are a compatibility surface: agents call
// search_companies(q, api_key) and friends by name, so they never change.
// Each passthrough is exactly one upstream request with no retry.

package mcp

import (
	"context"

	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/jpl-au/chtools/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolSearch     = "search_companies"
	ToolProfile    = "get_company_profile"
	ToolOfficers   = "get_company_officers"
	ToolFilings    = "get_filing_history"
	ToolCharges    = "get_company_charges"
	ToolInsolvency = "get_company_insolvency"
	ToolPSC        = "get_persons_with_significant_control"
	ToolAddress    = "get_registered_office_address"
	ToolReport     = "generate_company_report"
)

// Argument names.
const (
	argAPIKey        = "api_key"
	argCompanyNumber = "company_number"
	argQuery         = "q"
	argItemsPerPage  = "items_per_page"
	argStartIndex    = "start_index"
	argCategory      = "category"
)

// lookupTool builds a read-only tool that takes the caller's API key.
func lookupTool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	opts = append([]mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}, opts...)
	opts = append(opts, mcp.WithString(argAPIKey, mcp.Required(),
		mcp.Description("Companies House REST API key. Used for this call only; never stored")))
	return mcp.NewTool(name, opts...)
}

func companyNumberArg() mcp.ToolOption {
	return mcp.WithString(argCompanyNumber, mcp.Required(),
		mcp.Description("Company registration number, e.g. 00000006 or SC123456. Leading zeros may be omitted"))
}

func pagingArgs(def int) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber(argItemsPerPage, mcp.Min(1), mcp.Max(validate.MaxItemsPerPage),
			mcp.Description("Results per page (default: "+itoa(def)+")")),
		mcp.WithNumber(argStartIndex, mcp.Min(0),
			mcp.Description("Zero-based index of the first result (default: 0)")),
	}
}

// registerTools exposes company operations as MCP tools and returns the
// names registered.
func registerTools(s *server.MCPServer, h *handlers) []string {
	tools := []server.ServerTool{
		{
			Tool: lookupTool(ToolSearch, "Search UK companies by name or registration number",
				append([]mcp.ToolOption{mcp.WithString(argQuery, mcp.Required(), mcp.Description("Company name or number to search for"))},
					pagingArgs(5)...)...),
			Handler: h.searchCompanies,
		},
		{
			Tool:    lookupTool(ToolProfile, "Get a company's profile: name, status, type, incorporation date, registered office, SIC codes, accounts and confirmation statement deadlines", companyNumberArg()),
			Handler: h.getProfile,
		},
		{
			Tool:    lookupTool(ToolOfficers, "List a company's officers (directors and secretaries), current and resigned", append([]mcp.ToolOption{companyNumberArg()}, pagingArgs(20)...)...),
			Handler: h.getOfficers,
		},
		{
			Tool: lookupTool(ToolFilings, "List a company's filing history, newest first",
				append([]mcp.ToolOption{
					companyNumberArg(),
					mcp.WithString(argCategory, mcp.Description("Comma-separated categories to include, e.g. accounts,officers (default: all)")),
				}, pagingArgs(20)...)...),
			Handler: h.getFilings,
		},
		{
			Tool:    lookupTool(ToolCharges, "List charges (mortgages, debentures) registered against a company", companyNumberArg()),
			Handler: h.getCharges,
		},
		{
			Tool:    lookupTool(ToolInsolvency, "Get a company's insolvency cases. Returns NOT_FOUND when the company has no insolvency history", companyNumberArg()),
			Handler: h.getInsolvency,
		},
		{
			Tool:    lookupTool(ToolPSC, "List persons with significant control (beneficial owners) and their natures of control", companyNumberArg()),
			Handler: h.getPSC,
		},
		{
			Tool:    lookupTool(ToolAddress, "Get a company's current registered office address", companyNumberArg()),
			Handler: h.getAddress,
		},
		{
			Tool:    lookupTool(ToolReport, "Generate a comprehensive company report: profile, active officers with estimated ownership, beneficial owners, ownership summary, charges, insolvency and recent filings. Sections that cannot be fetched are listed under 'unavailable'", companyNumberArg()),
			Handler: h.generateReport,
		},
	}

	names := make([]string, 0, len(tools))
	for _, t := range tools {
		s.AddTool(t.Tool, t.Handler)
		names = append(names, t.Tool.Name)
	}
	return names
}

// searchCompanies handles search_companies tool calls.
func (h *handlers) searchCompanies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := getString(req, argQuery, "")
	opts := companieshouse.SearchOptions{
		ItemsPerPage: getInt(req, argItemsPerPage, 0),
		StartIndex:   getInt(req, argStartIndex, 0),
	}

	l := log.Event("mcp:"+ToolSearch, "search").Query(q)
	res, err := h.svc.Search(ctx, getString(req, argAPIKey, ""), q, opts)
	if err == nil {
		l.Detail("count", len(res.Items))
	}
	return finish(l, res, err)
}

// getProfile handles get_company_profile tool calls.
func (h *handlers) getProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := getString(req, argCompanyNumber, "")
	l := log.Event("mcp:"+ToolProfile, "profile").Company(n)
	res, err := h.svc.Profile(ctx, getString(req, argAPIKey, ""), n)
	return finish(l, res, err)
}

// getOfficers handles get_company_officers tool calls.
func (h *handlers) getOfficers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := getString(req, argCompanyNumber, "")
	opts := companieshouse.PageOptions{
		ItemsPerPage: getInt(req, argItemsPerPage, 0),
		StartIndex:   getInt(req, argStartIndex, 0),
	}

	l := log.Event("mcp:"+ToolOfficers, "officers").Company(n)
	res, err := h.svc.Officers(ctx, getString(req, argAPIKey, ""), n, opts)
	if err == nil {
		l.Detail("count", len(res.Items))
	}
	return finish(l, res, err)
}

// getFilings handles get_filing_history tool calls.
func (h *handlers) getFilings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := getString(req, argCompanyNumber, "")
	opts := companieshouse.FilingOptions{
		Category:     getString(req, argCategory, ""),
		ItemsPerPage: getInt(req, argItemsPerPage, 0),
		StartIndex:   getInt(req, argStartIndex, 0),
	}

	l := log.Event("mcp:"+ToolFilings, "filings").Company(n)
	if opts.Category != "" {
		l.Detail("category", opts.Category)
	}
	res, err := h.svc.FilingHistory(ctx, getString(req, argAPIKey, ""), n, opts)
	if err == nil {
		l.Detail("count", len(res.Items))
	}
	return finish(l, res, err)
}

// getCharges handles get_company_charges tool calls.
func (h *handlers) getCharges(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := getString(req, argCompanyNumber, "")
	l := log.Event("mcp:"+ToolCharges, "charges").Company(n)
	res, err := h.svc.Charges(ctx, getString(req, argAPIKey, ""), n)
	return finish(l, res, err)
}

// getInsolvency handles get_company_insolvency tool calls.
func (h *handlers) getInsolvency(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := getString(req, argCompanyNumber, "")
	l := log.Event("mcp:"+ToolInsolvency, "insolvency").Company(n)
	res, err := h.svc.Insolvency(ctx, getString(req, argAPIKey, ""), n)
	return finish(l, res, err)
}

// getPSC handles get_persons_with_significant_control tool calls.
func (h *handlers) getPSC(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := getString(req, argCompanyNumber, "")
	l := log.Event("mcp:"+ToolPSC, "psc").Company(n)
	res, err := h.svc.PersonsWithSignificantControl(ctx, getString(req, argAPIKey, ""), n)
	return finish(l, res, err)
}

// getAddress handles get_registered_office_address tool calls.
func (h *handlers) getAddress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := getString(req, argCompanyNumber, "")
	l := log.Event("mcp:"+ToolAddress, "address").Company(n)
	res, err := h.svc.RegisteredOffice(ctx, getString(req, argAPIKey, ""), n)
	return finish(l, res, err)
}
