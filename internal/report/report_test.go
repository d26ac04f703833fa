package report

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned sections and records which endpoints were hit.
type fakeFetcher struct {
	mu    sync.Mutex
	calls []string

	profile    *companieshouse.Profile
	officers   *companieshouse.OfficerList
	pscs       *companieshouse.PSCList
	charges    *companieshouse.ChargeList
	insolvency *companieshouse.Insolvency
	filings    *companieshouse.FilingHistory

	errs map[string]error

	afterProfile func()
}

func (f *fakeFetcher) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeFetcher) Profile(_ context.Context, _, _ string) (*companieshouse.Profile, error) {
	if err := f.record("profile"); err != nil {
		return nil, err
	}
	if f.afterProfile != nil {
		f.afterProfile()
	}
	return f.profile, nil
}

func (f *fakeFetcher) Officers(_ context.Context, _, _ string, _ companieshouse.PageOptions) (*companieshouse.OfficerList, error) {
	if err := f.record(SectionOfficers); err != nil {
		return nil, err
	}
	return f.officers, nil
}

func (f *fakeFetcher) PersonsWithSignificantControl(_ context.Context, _, _ string) (*companieshouse.PSCList, error) {
	if err := f.record(SectionPSC); err != nil {
		return nil, err
	}
	return f.pscs, nil
}

func (f *fakeFetcher) Charges(_ context.Context, _, _ string) (*companieshouse.ChargeList, error) {
	if err := f.record(SectionCharges); err != nil {
		return nil, err
	}
	return f.charges, nil
}

func (f *fakeFetcher) Insolvency(_ context.Context, _, _ string) (*companieshouse.Insolvency, error) {
	if err := f.record(SectionInsolvency); err != nil {
		return nil, err
	}
	return f.insolvency, nil
}

func (f *fakeFetcher) FilingHistory(_ context.Context, _, _ string, _ companieshouse.FilingOptions) (*companieshouse.FilingHistory, error) {
	if err := f.record(SectionFilings); err != nil {
		return nil, err
	}
	return f.filings, nil
}

func newFake() *fakeFetcher {
	return &fakeFetcher{
		profile: &companieshouse.Profile{
			CompanyNumber:  "01234567",
			CompanyName:    "ACME WIDGETS LIMITED",
			CompanyStatus:  "active",
			Type:           "ltd",
			DateOfCreation: "2001-02-03",
			RegisteredOfficeAddress: &companieshouse.Address{
				AddressLine1: "1 High Street",
				PostalCode:   "AB1 2CD",
			},
		},
		officers: &companieshouse.OfficerList{Items: []companieshouse.Officer{
			{Name: "SMITH, Jane Elizabeth", OfficerRole: "director", AppointedOn: "2001-02-03"},
			{Name: "BROWN, Robert", OfficerRole: "secretary", AppointedOn: "2001-02-03"},
			{Name: "OLD, Former", OfficerRole: "director", ResignedOn: "2010-01-01"},
		}},
		pscs: &companieshouse.PSCList{Items: []companieshouse.PSC{
			{Name: "Mrs Jane Elizabeth Smith", Kind: "individual-person-with-significant-control",
				NaturesOfControl: []string{"ownership-of-shares-50-to-75-percent", "voting-rights-50-to-75-percent"}},
			{Name: "Holdco Limited", Kind: "corporate-entity-person-with-significant-control",
				NaturesOfControl: []string{"ownership-of-shares-25-to-50-percent"}},
			{Name: "Influencer Trust", NaturesOfControl: []string{"significant-influence-or-control"}},
		}},
		charges: &companieshouse.ChargeList{TotalCount: 3, Items: []companieshouse.Charge{
			{Status: "outstanding"}, {Status: "fully-satisfied"}, {Status: "outstanding"},
		}},
		insolvency: &companieshouse.Insolvency{Cases: []companieshouse.InsolvencyCase{}},
		filings: &companieshouse.FilingHistory{Items: []companieshouse.Filing{
			{TransactionID: "abc", Category: "accounts", Date: "2024-01-01"},
		}},
		errs: map[string]error{},
	}
}

func notFound(endpoint string) error {
	return companieshouse.NewStatusError(404, endpoint, "")
}

func TestBuild_MergesSections(t *testing.T) {
	f := newFake()
	r, err := Build(context.Background(), f, "key", "01234567", Options{})
	require.NoError(t, err)

	assert.Equal(t, "01234567", r.CompanyNumber)
	assert.Equal(t, "ACME WIDGETS LIMITED", r.CompanyName)
	assert.Equal(t, "active", r.Status)
	assert.Equal(t, "2001-02-03", r.IncorporationDate)
	assert.Same(t, f.profile, r.Profile)
	assert.Equal(t, 3, r.OfficersCount)
	assert.Len(t, r.ActiveOfficers, 2)
	assert.Len(t, r.BeneficialOwners, 3)
	assert.Len(t, r.RecentFilings, 1)
	assert.Equal(t, ChargesSummary{Total: 3, Outstanding: 2, Satisfied: 1, Available: true}, r.ChargesSummary)
	assert.Empty(t, r.Unavailable)
	assert.Len(t, f.calls, 6)
}

func TestBuild_OwnershipSummary(t *testing.T) {
	r, err := Build(context.Background(), newFake(), "key", "01234567", Options{})
	require.NoError(t, err)

	require.Contains(t, r.OwnershipSummary, "Holdco Limited")
	holdco := r.OwnershipSummary["Holdco Limited"]
	require.NotNil(t, holdco)
	assert.GreaterOrEqual(t, *holdco, 25.0)
	assert.LessOrEqual(t, *holdco, 50.0)

	jane := r.OwnershipSummary["Mrs Jane Elizabeth Smith"]
	require.NotNil(t, jane)
	assert.Equal(t, 62.5, *jane)

	// Unrecognised codes are present with no estimate.
	est, ok := r.OwnershipSummary["Influencer Trust"]
	assert.True(t, ok)
	assert.Nil(t, est)
	assert.Equal(t, Unknown, r.BeneficialOwners[2].Ownership)
}

func TestBuild_OfficerMatching(t *testing.T) {
	r, err := Build(context.Background(), newFake(), "key", "01234567", Options{})
	require.NoError(t, err)

	jane := r.ActiveOfficers[0]
	assert.Equal(t, "Mrs Jane Elizabeth Smith", jane.MatchedPSC)
	assert.Equal(t, "50% - 75%", jane.Ownership)
	require.NotNil(t, jane.Estimate)
	assert.Equal(t, 62.5, *jane.Estimate)

	bob := r.ActiveOfficers[1]
	assert.Empty(t, bob.MatchedPSC)
	assert.Equal(t, NotAPSC, bob.Ownership)
	assert.Nil(t, bob.Estimate)
}

func TestBuild_ProfileNotFoundStopsEverything(t *testing.T) {
	f := newFake()
	f.errs["profile"] = notFound("/company/01234567")

	_, err := Build(context.Background(), f, "key", "01234567", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, companieshouse.ErrNotFound)
	assert.Equal(t, []string{"profile"}, f.calls)
}

func TestBuild_AuthFailureOnProfile(t *testing.T) {
	f := newFake()
	f.errs["profile"] = fmt.Errorf("%w: api key required", companieshouse.ErrAuthentication)

	_, err := Build(context.Background(), f, "", "01234567", Options{})
	assert.ErrorIs(t, err, companieshouse.ErrAuthentication)
	assert.Equal(t, []string{"profile"}, f.calls)
}

func TestBuild_AuthFailureOnSectionAborts(t *testing.T) {
	f := newFake()
	f.errs[SectionPSC] = companieshouse.NewStatusError(401, "/company/01234567/persons-with-significant-control", "")

	r, err := Build(context.Background(), f, "key", "01234567", Options{})
	assert.Nil(t, r)
	assert.ErrorIs(t, err, companieshouse.ErrAuthentication)
}

func TestBuild_InsolvencyFailureDegrades(t *testing.T) {
	f := newFake()
	f.errs[SectionInsolvency] = companieshouse.NewStatusError(503, "/company/01234567/insolvency", "")

	r, err := Build(context.Background(), f, "key", "01234567", Options{})
	require.NoError(t, err)

	assert.NotNil(t, r.Profile)
	assert.NotEmpty(t, r.ActiveOfficers)
	assert.NotEmpty(t, r.BeneficialOwners)
	assert.Nil(t, r.Insolvency)
	require.Contains(t, r.Unavailable, SectionInsolvency)
	assert.Contains(t, r.Unavailable[SectionInsolvency], "503")
}

func TestBuild_SectionNotFoundIsEmpty(t *testing.T) {
	f := newFake()
	f.errs[SectionCharges] = notFound("/company/01234567/charges")
	f.errs[SectionInsolvency] = notFound("/company/01234567/insolvency")

	r, err := Build(context.Background(), f, "key", "01234567", Options{})
	require.NoError(t, err)

	assert.Empty(t, r.Unavailable)
	assert.Equal(t, ChargesSummary{Available: true}, r.ChargesSummary)
	assert.Nil(t, r.Insolvency)
}

func TestBuild_ChargesUnavailable(t *testing.T) {
	f := newFake()
	f.errs[SectionCharges] = companieshouse.NewStatusError(429, "/company/01234567/charges", "")

	r, err := Build(context.Background(), f, "key", "01234567", Options{})
	require.NoError(t, err)
	assert.False(t, r.ChargesSummary.Available)
	assert.Contains(t, r.Unavailable, SectionCharges)
}

func TestBuild_PSCUnavailable(t *testing.T) {
	f := newFake()
	f.errs[SectionPSC] = companieshouse.NewStatusError(500, "/company/01234567/persons-with-significant-control", "")

	r, err := Build(context.Background(), f, "key", "01234567", Options{})
	require.NoError(t, err)
	assert.Empty(t, r.BeneficialOwners)
	assert.Empty(t, r.OwnershipSummary)
	for _, o := range r.ActiveOfficers {
		assert.Equal(t, NotAPSC, o.Ownership)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	f := newFake()
	first, err := Build(context.Background(), f, "key", "01234567", Options{})
	require.NoError(t, err)
	second, err := Build(context.Background(), f, "key", "01234567", Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOwners_DuplicateNameKeepsHighest(t *testing.T) {
	_, summary := owners([]companieshouse.PSC{
		{Name: "A", NaturesOfControl: []string{"ownership-of-shares-25-to-50-percent"}},
		{Name: "A", NaturesOfControl: []string{"ownership-of-shares-75-to-100-percent"}},
		{Name: "A", NaturesOfControl: []string{"right-to-appoint-and-remove-directors"}},
	})
	require.NotNil(t, summary["A"])
	assert.Equal(t, 87.5, *summary["A"])
}

func TestBuild_ReportsProgress(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	ctx := WithProgress(context.Background(), func(section string, _ error) {
		mu.Lock()
		seen = append(seen, section)
		mu.Unlock()
	})

	_, err := Build(ctx, newFake(), "key", "01234567", Options{})
	require.NoError(t, err)
	assert.Len(t, seen, SectionCount)
	assert.Equal(t, SectionProfile, seen[0])
	assert.ElementsMatch(t, []string{SectionProfile, SectionOfficers, SectionPSC, SectionCharges, SectionInsolvency, SectionFilings}, seen)
}

func TestBuild_CallerCancelAfterProfile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFake()
	f.afterProfile = cancel

	r, err := Build(ctx, f, "key", "01234567", Options{})
	assert.Nil(t, r)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOwners_CeasedLeavesSummary(t *testing.T) {
	bos, summary := owners([]companieshouse.PSC{
		{Name: "A", CeasedOn: "2019-05-01", NaturesOfControl: []string{"ownership-of-shares-75-to-100-percent"}},
		{Name: "A", NaturesOfControl: []string{"ownership-of-shares-25-to-50-percent"}},
		{Name: "B", CeasedOn: "2020-01-01", NaturesOfControl: []string{"ownership-of-shares-50-to-75-percent"}},
	})
	assert.Len(t, bos, 3)
	require.NotNil(t, summary["A"])
	assert.Equal(t, 37.5, *summary["A"])
	assert.NotContains(t, summary, "B")
}
