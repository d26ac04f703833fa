// Package service defines the shared interface for Companies House
// operations. Commands, MCP tools and extensions depend on this interface
// rather than the concrete implementation, enabling testing with fakes.
package service

import (
	"context"

	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/report"
)

// Service defines all company operations.
//
// Every method takes the caller's API key as an argument. Implementations
// must not retain it beyond the call: no fields, no logs, no files. An
// empty key fails with companieshouse.ErrAuthentication before any network
// request.
//
// Company numbers are normalised (trimmed, upper-cased, zero-padded) and
// validated before any request; malformed input fails with a validate
// error. Zero paging values mean "use the configured default".
//
// Example:
//
//	svc, err := company.New(company.Options{})
//	if err != nil {
//	    return err
//	}
//	r, err := svc.Report(ctx, apiKey, "00000006")
type Service interface {
	// Search finds companies by name or number.
	Search(ctx context.Context, apiKey, q string, opts companieshouse.SearchOptions) (*companieshouse.SearchResult, error)

	// Profile returns the company profile.
	// Returns companieshouse.ErrNotFound if the company does not exist.
	Profile(ctx context.Context, apiKey, number string) (*companieshouse.Profile, error)

	// Officers returns a page of the company's officers, current and resigned.
	Officers(ctx context.Context, apiKey, number string, opts companieshouse.PageOptions) (*companieshouse.OfficerList, error)

	// FilingHistory returns a page of filings, newest first, optionally
	// filtered by category.
	FilingHistory(ctx context.Context, apiKey, number string, opts companieshouse.FilingOptions) (*companieshouse.FilingHistory, error)

	// Charges returns the charges registered against the company.
	Charges(ctx context.Context, apiKey, number string) (*companieshouse.ChargeList, error)

	// Insolvency returns insolvency proceedings. Upstream answers not
	// found for companies with no insolvency history.
	Insolvency(ctx context.Context, apiKey, number string) (*companieshouse.Insolvency, error)

	// PersonsWithSignificantControl returns the PSC register.
	PersonsWithSignificantControl(ctx context.Context, apiKey, number string) (*companieshouse.PSCList, error)

	// RegisteredOffice returns the current registered office address.
	RegisteredOffice(ctx context.Context, apiKey, number string) (*companieshouse.Address, error)

	// Report builds the comprehensive company report. Authentication
	// failures and an unknown company abort it; any other section failure
	// leaves that section empty and is listed in Report.Unavailable.
	Report(ctx context.Context, apiKey, number string) (*report.Report, error)
}
