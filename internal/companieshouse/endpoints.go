// endpoints.go maps each supported Companies House endpoint to a method.
//
// Methods take the company number as given. Normalisation and validation
// happen in the company service so that malformed input never reaches the
// network.

package companieshouse

import (
	"context"
	"net/url"
)

// SearchOptions configures a company search.
type SearchOptions struct {
	ItemsPerPage int
	StartIndex   int
}

// FilingOptions configures a filing history request.
type FilingOptions struct {
	Category     string // comma-separated upstream categories, empty for all
	ItemsPerPage int
	StartIndex   int
}

// PageOptions configures a paged list request.
type PageOptions struct {
	ItemsPerPage int
	StartIndex   int
}

func companyPath(number string, suffix string) string {
	return "/company/" + url.PathEscape(number) + suffix
}

// SearchCompanies searches companies by name, number or address.
func (c *Client) SearchCompanies(ctx context.Context, apiKey, q string, opts SearchOptions) (*SearchResult, error) {
	query := pageQuery(opts.ItemsPerPage, opts.StartIndex)
	query.Set("q", q)

	var out SearchResult
	if err := c.get(ctx, apiKey, "/search/companies", query, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []SearchItem{}
	}
	return &out, nil
}

// Profile returns the company profile.
func (c *Client) Profile(ctx context.Context, apiKey, number string) (*Profile, error) {
	var out Profile
	if err := c.get(ctx, apiKey, companyPath(number, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Officers returns a page of company officers.
func (c *Client) Officers(ctx context.Context, apiKey, number string, opts PageOptions) (*OfficerList, error) {
	var out OfficerList
	err := c.get(ctx, apiKey, companyPath(number, "/officers"), pageQuery(opts.ItemsPerPage, opts.StartIndex), &out)
	if err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []Officer{}
	}
	return &out, nil
}

// FilingHistory returns a page of the company's filings.
func (c *Client) FilingHistory(ctx context.Context, apiKey, number string, opts FilingOptions) (*FilingHistory, error) {
	query := pageQuery(opts.ItemsPerPage, opts.StartIndex)
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}

	var out FilingHistory
	if err := c.get(ctx, apiKey, companyPath(number, "/filing-history"), query, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []Filing{}
	}
	return &out, nil
}

// Charges returns the charges registered against the company.
func (c *Client) Charges(ctx context.Context, apiKey, number string) (*ChargeList, error) {
	var out ChargeList
	if err := c.get(ctx, apiKey, companyPath(number, "/charges"), nil, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []Charge{}
	}
	return &out, nil
}

// Insolvency returns insolvency proceedings for the company.
// Upstream answers 404 for companies with no insolvency history.
func (c *Client) Insolvency(ctx context.Context, apiKey, number string) (*Insolvency, error) {
	var out Insolvency
	if err := c.get(ctx, apiKey, companyPath(number, "/insolvency"), nil, &out); err != nil {
		return nil, err
	}
	if out.Cases == nil {
		out.Cases = []InsolvencyCase{}
	}
	return &out, nil
}

// PersonsWithSignificantControl returns the company's PSC register.
func (c *Client) PersonsWithSignificantControl(ctx context.Context, apiKey, number string) (*PSCList, error) {
	var out PSCList
	if err := c.get(ctx, apiKey, companyPath(number, "/persons-with-significant-control"), nil, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []PSC{}
	}
	for i := range out.Items {
		if out.Items[i].NaturesOfControl == nil {
			out.Items[i].NaturesOfControl = []string{}
		}
	}
	return &out, nil
}

// RegisteredOfficeAddress returns the current registered office.
func (c *Client) RegisteredOfficeAddress(ctx context.Context, apiKey, number string) (*Address, error) {
	var out Address
	if err := c.get(ctx, apiKey, companyPath(number, "/registered-office-address"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
