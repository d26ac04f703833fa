// Package report builds the comprehensive company report: profile, officers,
// persons with significant control, charges, insolvency and recent filings
// merged into one record, with an ownership estimate per PSC and each active
// officer matched to their PSC entry.
//
// The profile is fetched first and alone. Its failure ends the report,
// which is how an unknown company number stops every further call. The
// remaining sections are fetched concurrently and degrade independently:
// a failed section is left empty and noted in Report.Unavailable, unless
// the failure is an authentication error, which aborts the whole report.
package report

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jpl-au/chtools/internal/companieshouse"
)

// Section names used as keys in Report.Unavailable.
const (
	SectionProfile    = "profile"
	SectionOfficers   = "officers"
	SectionPSC        = "persons_with_significant_control"
	SectionCharges    = "charges"
	SectionInsolvency = "insolvency"
	SectionFilings    = "filing_history"
)

// SectionCount is the number of upstream requests a complete report makes.
const SectionCount = 6

// NotAPSC labels an officer with no matching PSC entry.
const NotAPSC = "0% (Not a PSC)"

// Unknown labels a PSC whose natures of control carry no percentage band.
const Unknown = "Unknown"

// Default fetch sizes.
const (
	DefaultOfficersPerPage = 100
	DefaultFilings         = 10
)

// Fetcher is the subset of the Companies House client the report needs.
type Fetcher interface {
	Profile(ctx context.Context, apiKey, number string) (*companieshouse.Profile, error)
	Officers(ctx context.Context, apiKey, number string, opts companieshouse.PageOptions) (*companieshouse.OfficerList, error)
	PersonsWithSignificantControl(ctx context.Context, apiKey, number string) (*companieshouse.PSCList, error)
	Charges(ctx context.Context, apiKey, number string) (*companieshouse.ChargeList, error)
	Insolvency(ctx context.Context, apiKey, number string) (*companieshouse.Insolvency, error)
	FilingHistory(ctx context.Context, apiKey, number string, opts companieshouse.FilingOptions) (*companieshouse.FilingHistory, error)
}

// Options configures report construction.
type Options struct {
	OfficersPerPage int // officers requested, defaults to DefaultOfficersPerPage
	Filings         int // recent filings requested, defaults to DefaultFilings
}

// Report is the merged company record.
type Report struct {
	CompanyNumber     string                  `json:"company_number"`
	CompanyName       string                  `json:"company_name"`
	Status            string                  `json:"status,omitempty"`
	Type              string                  `json:"type,omitempty"`
	IncorporationDate string                  `json:"incorporation_date,omitempty"`
	RegisteredAddress *companieshouse.Address `json:"registered_address,omitempty"`

	OfficersCount    int                 `json:"officers_count"`
	ActiveOfficers   []ActiveOfficer     `json:"active_officers"`
	BeneficialOwners []BeneficialOwner   `json:"beneficial_owners"`
	OwnershipSummary map[string]*float64 `json:"ownership_summary"`

	ChargesSummary ChargesSummary             `json:"charges_summary"`
	Insolvency     *companieshouse.Insolvency `json:"insolvency,omitempty"`
	RecentFilings  []companieshouse.Filing    `json:"recent_filings"`

	// Unavailable maps a section name to the reason it could not be fetched.
	Unavailable map[string]string `json:"unavailable,omitempty"`

	// Profile is exactly what get_company_profile returns for the same company.
	Profile *companieshouse.Profile `json:"profile"`
}

// ActiveOfficer is a serving officer with their estimated ownership.
type ActiveOfficer struct {
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	AppointedOn        string   `json:"appointed_on,omitempty"`
	Nationality        string   `json:"nationality,omitempty"`
	CountryOfResidence string   `json:"country_of_residence,omitempty"`
	Ownership          string   `json:"ownership_percentage"`
	Estimate           *float64 `json:"ownership_estimate"`
	MatchedPSC         string   `json:"matched_psc,omitempty"`
}

// BeneficialOwner is a PSC with its classified band.
type BeneficialOwner struct {
	Name               string   `json:"name"`
	Kind               string   `json:"kind,omitempty"`
	Nationality        string   `json:"nationality,omitempty"`
	CountryOfResidence string   `json:"country_of_residence,omitempty"`
	NotifiedOn         string   `json:"notified_on,omitempty"`
	CeasedOn           string   `json:"ceased_on,omitempty"`
	Ownership          string   `json:"ownership_percentage"`
	Band               *Band    `json:"band,omitempty"`
	NaturesOfControl   []string `json:"natures_of_control"`
}

// ChargesSummary counts registered charges.
type ChargesSummary struct {
	Total       int  `json:"total_charges"`
	Outstanding int  `json:"outstanding_charges"`
	Satisfied   int  `json:"satisfied_charges"`
	Available   bool `json:"available"`
}

// sections holds the raw results of the concurrent fetches.
type sections struct {
	officers   *companieshouse.OfficerList
	pscs       *companieshouse.PSCList
	charges    *companieshouse.ChargeList
	insolvency *companieshouse.Insolvency
	filings    *companieshouse.FilingHistory
	errs       map[string]error
}

// Build fetches and merges all sections for a company. The number must
// already be validated.
func Build(ctx context.Context, f Fetcher, apiKey, number string, opts Options) (*Report, error) {
	if opts.OfficersPerPage <= 0 {
		opts.OfficersPerPage = DefaultOfficersPerPage
	}
	if opts.Filings <= 0 {
		opts.Filings = DefaultFilings
	}

	profile, err := f.Profile(ctx, apiKey, number)
	notify(ctx, SectionProfile, err)
	if err != nil {
		return nil, fmt.Errorf("report %s: profile: %w", number, err)
	}

	s, err := fetchSections(ctx, f, apiKey, number, opts)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", number, err)
	}

	return assemble(profile, s), nil
}

// fetchSections runs the independent fetches concurrently. The first
// authentication failure cancels the rest and is returned, as is the
// caller's own cancellation.
func fetchSections(parent context.Context, f Fetcher, apiKey, number string, opts Options) (*sections, error) {
	ctx, cancel := context.WithCancelCause(parent)
	defer cancel(nil)

	s := &sections{errs: make(map[string]error)}
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	run := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := fetch()
			notify(ctx, name, err)
			if err == nil {
				return
			}
			mu.Lock()
			s.errs[name] = err
			mu.Unlock()
			if errors.Is(err, companieshouse.ErrAuthentication) {
				cancel(err)
			}
		}()
	}

	run(SectionOfficers, func() (err error) {
		s.officers, err = f.Officers(ctx, apiKey, number, companieshouse.PageOptions{ItemsPerPage: opts.OfficersPerPage})
		return err
	})
	run(SectionPSC, func() (err error) {
		s.pscs, err = f.PersonsWithSignificantControl(ctx, apiKey, number)
		return err
	})
	run(SectionCharges, func() (err error) {
		s.charges, err = f.Charges(ctx, apiKey, number)
		return err
	})
	run(SectionInsolvency, func() (err error) {
		s.insolvency, err = f.Insolvency(ctx, apiKey, number)
		return err
	})
	run(SectionFilings, func() (err error) {
		s.filings, err = f.FilingHistory(ctx, apiKey, number, companieshouse.FilingOptions{ItemsPerPage: opts.Filings})
		return err
	})

	wg.Wait()

	if cause := context.Cause(ctx); errors.Is(cause, companieshouse.ErrAuthentication) {
		return nil, cause
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// assemble merges the profile and sections into a Report.
func assemble(p *companieshouse.Profile, s *sections) *Report {
	r := &Report{
		CompanyNumber:     p.CompanyNumber,
		CompanyName:       p.CompanyName,
		Status:            p.CompanyStatus,
		Type:              p.Type,
		IncorporationDate: p.DateOfCreation,
		RegisteredAddress: p.RegisteredOfficeAddress,
		ActiveOfficers:    []ActiveOfficer{},
		BeneficialOwners:  []BeneficialOwner{},
		OwnershipSummary:  map[string]*float64{},
		RecentFilings:     []companieshouse.Filing{},
		Profile:           p,
	}

	for name, err := range s.errs {
		// Upstream answers 404 for an empty register; that is an empty
		// section, not a missing one.
		if errors.Is(err, companieshouse.ErrNotFound) {
			continue
		}
		if r.Unavailable == nil {
			r.Unavailable = make(map[string]string)
		}
		r.Unavailable[name] = err.Error()
	}

	var pscs []companieshouse.PSC
	if s.pscs != nil {
		pscs = s.pscs.Items
	}
	r.BeneficialOwners, r.OwnershipSummary = owners(pscs)

	if s.officers != nil {
		r.OfficersCount = len(s.officers.Items)
		r.ActiveOfficers = activeOfficers(s.officers.Items, r.BeneficialOwners)
	}

	if s.charges != nil {
		r.ChargesSummary = summariseCharges(s.charges)
	} else if _, failed := r.Unavailable[SectionCharges]; !failed {
		r.ChargesSummary.Available = true
	}

	if s.insolvency != nil {
		r.Insolvency = s.insolvency
	}

	if s.filings != nil {
		r.RecentFilings = s.filings.Items
	}

	return r
}

// owners classifies each PSC and builds the ownership summary.
func owners(pscs []companieshouse.PSC) ([]BeneficialOwner, map[string]*float64) {
	out := make([]BeneficialOwner, 0, len(pscs))
	summary := make(map[string]*float64, len(pscs))

	for _, p := range pscs {
		bo := BeneficialOwner{
			Name:               p.Name,
			Kind:               p.Kind,
			Nationality:        p.Nationality,
			CountryOfResidence: p.CountryOfResidence,
			NotifiedOn:         p.NotifiedOn,
			CeasedOn:           p.CeasedOn,
			Ownership:          Unknown,
			NaturesOfControl:   p.NaturesOfControl,
		}
		if bo.NaturesOfControl == nil {
			bo.NaturesOfControl = []string{}
		}

		var estimate *float64
		if b, ok := Estimate(p.NaturesOfControl); ok {
			bo.Band = &b
			bo.Ownership = b.Label
			v := b.Estimate
			estimate = &v
		}
		out = append(out, bo)

		// Ceased entries describe past control and stay out of the
		// summary. A repeated name keeps its highest estimate; an unknown
		// never replaces a recognised one.
		if p.CeasedOn != "" {
			continue
		}
		if prev, seen := summary[p.Name]; seen && prev != nil && (estimate == nil || *estimate <= *prev) {
			continue
		}
		summary[p.Name] = estimate
	}
	return out, summary
}

// activeOfficers lists serving officers with the band of their matching PSC.
func activeOfficers(officers []companieshouse.Officer, owners []BeneficialOwner) []ActiveOfficer {
	current := make([]BeneficialOwner, 0, len(owners))
	names := make([]string, 0, len(owners))
	for _, o := range owners {
		if o.CeasedOn == "" {
			current = append(current, o)
			names = append(names, o.Name)
		}
	}
	m := newMatcher(names)

	out := make([]ActiveOfficer, 0, len(officers))
	for _, o := range officers {
		if !o.Active() {
			continue
		}
		ao := ActiveOfficer{
			Name:               o.Name,
			Role:               o.OfficerRole,
			AppointedOn:        o.AppointedOn,
			Nationality:        o.Nationality,
			CountryOfResidence: o.CountryOfResidence,
			Ownership:          NotAPSC,
		}
		if i := m.find(o.Name); i >= 0 {
			psc := current[i]
			ao.MatchedPSC = psc.Name
			ao.Ownership = psc.Ownership
			if psc.Band != nil {
				v := psc.Band.Estimate
				ao.Estimate = &v
			}
		}
		out = append(out, ao)
	}
	return out
}

func summariseCharges(c *companieshouse.ChargeList) ChargesSummary {
	sum := ChargesSummary{Total: c.TotalCount, Available: true}
	if sum.Total == 0 {
		sum.Total = len(c.Items)
	}
	for _, ch := range c.Items {
		switch {
		case ch.Outstanding():
			sum.Outstanding++
		case ch.Status == "fully-satisfied" || ch.Status == "satisfied":
			sum.Satisfied++
		}
	}
	return sum
}
