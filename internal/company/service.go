// Package company implements service.Service on top of the Companies House
// client. It owns the order of checks every operation goes through: the
// API key must be present, the input must validate, and only then is the
// upstream called. Nothing it holds is per-caller; keys arrive with each
// call and are dropped when it returns.
package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/config"
	"github.com/jpl-au/chtools/internal/report"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/jpl-au/chtools/internal/validate"
	"github.com/jpl-au/chtools/internal/version"
)

var _ service.Service = (*Service)(nil)

// Options configures a Service. Zero values take the config defaults.
type Options struct {
	Client companieshouse.Options

	SearchItems   int // default items_per_page for Search
	OfficersItems int // default items_per_page for Officers
	FilingsItems  int // default items_per_page for FilingHistory
	Report        report.Options
}

// OptionsFromConfig derives Options from loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Client: companieshouse.Options{
			BaseURL:   cfg.BaseURL(),
			Timeout:   cfg.Timeout(),
			UserAgent: version.UserAgent(),
		},
		SearchItems:   cfg.SearchItems(),
		OfficersItems: cfg.OfficersItems(),
		FilingsItems:  cfg.FilingsItems(),
		Report: report.Options{
			OfficersPerPage: cfg.ReportOfficers(),
			Filings:         cfg.ReportFilings(),
		},
	}
}

// Service provides validated company operations backed by a Client.
type Service struct {
	client *companieshouse.Client
	opts   Options
}

// New creates a Service. Returns an error if the client options are invalid.
func New(opts Options) (*Service, error) {
	if opts.SearchItems <= 0 {
		opts.SearchItems = config.DefaultSearchItems
	}
	if opts.OfficersItems <= 0 {
		opts.OfficersItems = config.DefaultOfficersItems
	}
	if opts.FilingsItems <= 0 {
		opts.FilingsItems = config.DefaultFilingsItems
	}
	if opts.Client.UserAgent == "" {
		opts.Client.UserAgent = version.UserAgent()
	}

	c, err := companieshouse.New(opts.Client)
	if err != nil {
		return nil, err
	}
	return &Service{client: c, opts: opts}, nil
}

// BaseURL returns the upstream API root.
func (s *Service) BaseURL() string {
	return s.client.BaseURL()
}

// requireKey rejects an absent credential before any other work.
func requireKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return fmt.Errorf("%w: api key required", companieshouse.ErrAuthentication)
	}
	return nil
}

// prepare checks the key and normalises the company number.
func prepare(apiKey, number string) (string, error) {
	if err := requireKey(apiKey); err != nil {
		return "", err
	}
	return validate.CompanyNumber(number)
}

// Search finds companies by name or number.
func (s *Service) Search(ctx context.Context, apiKey, q string, opts companieshouse.SearchOptions) (*companieshouse.SearchResult, error) {
	if err := requireKey(apiKey); err != nil {
		return nil, err
	}
	q, err := validate.Query(q)
	if err != nil {
		return nil, err
	}
	if opts.ItemsPerPage == 0 {
		opts.ItemsPerPage = s.opts.SearchItems
	}
	if err := validate.Paging(opts.ItemsPerPage, opts.StartIndex); err != nil {
		return nil, err
	}
	return s.client.SearchCompanies(ctx, apiKey, q, opts)
}

// Profile returns the company profile.
func (s *Service) Profile(ctx context.Context, apiKey, number string) (*companieshouse.Profile, error) {
	n, err := prepare(apiKey, number)
	if err != nil {
		return nil, err
	}
	return s.client.Profile(ctx, apiKey, n)
}

// Officers returns a page of company officers.
func (s *Service) Officers(ctx context.Context, apiKey, number string, opts companieshouse.PageOptions) (*companieshouse.OfficerList, error) {
	n, err := prepare(apiKey, number)
	if err != nil {
		return nil, err
	}
	if opts.ItemsPerPage == 0 {
		opts.ItemsPerPage = s.opts.OfficersItems
	}
	if err := validate.Paging(opts.ItemsPerPage, opts.StartIndex); err != nil {
		return nil, err
	}
	return s.client.Officers(ctx, apiKey, n, opts)
}

// FilingHistory returns a page of filings.
func (s *Service) FilingHistory(ctx context.Context, apiKey, number string, opts companieshouse.FilingOptions) (*companieshouse.FilingHistory, error) {
	n, err := prepare(apiKey, number)
	if err != nil {
		return nil, err
	}
	if opts.ItemsPerPage == 0 {
		opts.ItemsPerPage = s.opts.FilingsItems
	}
	if err := validate.Paging(opts.ItemsPerPage, opts.StartIndex); err != nil {
		return nil, err
	}
	if opts.Category, err = validate.FilingCategory(opts.Category); err != nil {
		return nil, err
	}
	return s.client.FilingHistory(ctx, apiKey, n, opts)
}

// Charges returns registered charges.
func (s *Service) Charges(ctx context.Context, apiKey, number string) (*companieshouse.ChargeList, error) {
	n, err := prepare(apiKey, number)
	if err != nil {
		return nil, err
	}
	return s.client.Charges(ctx, apiKey, n)
}

// Insolvency returns insolvency proceedings.
func (s *Service) Insolvency(ctx context.Context, apiKey, number string) (*companieshouse.Insolvency, error) {
	n, err := prepare(apiKey, number)
	if err != nil {
		return nil, err
	}
	return s.client.Insolvency(ctx, apiKey, n)
}

// PersonsWithSignificantControl returns the PSC register.
func (s *Service) PersonsWithSignificantControl(ctx context.Context, apiKey, number string) (*companieshouse.PSCList, error) {
	n, err := prepare(apiKey, number)
	if err != nil {
		return nil, err
	}
	return s.client.PersonsWithSignificantControl(ctx, apiKey, n)
}

// RegisteredOffice returns the registered office address.
func (s *Service) RegisteredOffice(ctx context.Context, apiKey, number string) (*companieshouse.Address, error) {
	n, err := prepare(apiKey, number)
	if err != nil {
		return nil, err
	}
	return s.client.RegisteredOfficeAddress(ctx, apiKey, n)
}

// Report builds the comprehensive report. The client is the fetcher, so
// the profile inside the report is the same record Profile returns.
func (s *Service) Report(ctx context.Context, apiKey, number string) (*report.Report, error) {
	n, err := prepare(apiKey, number)
	if err != nil {
		return nil, err
	}
	return report.Build(ctx, s.client, apiKey, n, s.opts.Report)
}
