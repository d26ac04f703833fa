// types.go defines the trimmed response shapes returned to tool callers.
//
// Decoding straight into these structs is the field selection: anything
// upstream sends that is not listed here is dropped. JSON names follow the
// upstream snake_case names so agents can cross-reference the public API docs.

package companieshouse

// Address is a postal address as recorded by the registrar.
type Address struct {
	CareOf       string `json:"care_of,omitempty"`
	POBox        string `json:"po_box,omitempty"`
	Premises     string `json:"premises,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

// SearchResult is a page of company search hits.
type SearchResult struct {
	TotalResults int          `json:"total_results"`
	ItemsPerPage int          `json:"items_per_page"`
	StartIndex   int          `json:"start_index"`
	Items        []SearchItem `json:"items"`
}

// SearchItem is a single company search hit.
type SearchItem struct {
	CompanyNumber   string `json:"company_number"`
	Title           string `json:"title"`
	CompanyStatus   string `json:"company_status,omitempty"`
	CompanyType     string `json:"company_type,omitempty"`
	DateOfCreation  string `json:"date_of_creation,omitempty"`
	DateOfCessation string `json:"date_of_cessation,omitempty"`
	AddressSnippet  string `json:"address_snippet,omitempty"`
	Description     string `json:"description,omitempty"`
}

// Profile is the basic company record.
type Profile struct {
	CompanyNumber           string         `json:"company_number"`
	CompanyName             string         `json:"company_name"`
	CompanyStatus           string         `json:"company_status,omitempty"`
	CompanyStatusDetail     string         `json:"company_status_detail,omitempty"`
	Type                    string         `json:"type,omitempty"`
	Jurisdiction            string         `json:"jurisdiction,omitempty"`
	DateOfCreation          string         `json:"date_of_creation,omitempty"`
	DateOfCessation         string         `json:"date_of_cessation,omitempty"`
	RegisteredOfficeAddress *Address       `json:"registered_office_address,omitempty"`
	SICCodes                []string       `json:"sic_codes,omitempty"`
	HasCharges              bool           `json:"has_charges"`
	HasInsolvencyHistory    bool           `json:"has_insolvency_history"`
	Accounts                *Deadline      `json:"accounts,omitempty"`
	ConfirmationStatement   *Deadline      `json:"confirmation_statement,omitempty"`
	PreviousCompanyNames    []PreviousName `json:"previous_company_names,omitempty"`
}

// Deadline tracks a recurring filing obligation (accounts or confirmation statement).
type Deadline struct {
	NextDue      string `json:"next_due,omitempty"`
	LastMadeUpTo string `json:"last_made_up_to,omitempty"`
	Overdue      bool   `json:"overdue,omitempty"`
}

// PreviousName is a former registered name.
type PreviousName struct {
	Name          string `json:"name"`
	EffectiveFrom string `json:"effective_from,omitempty"`
	CeasedOn      string `json:"ceased_on,omitempty"`
}

// PartialDate is a month/year pair. The registrar never publishes full
// dates of birth.
type PartialDate struct {
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}

// OfficerList is a page of officers.
type OfficerList struct {
	TotalResults  int       `json:"total_results"`
	ActiveCount   int       `json:"active_count"`
	ResignedCount int       `json:"resigned_count"`
	Items         []Officer `json:"items"`
}

// Officer is a director, secretary or LLP member.
type Officer struct {
	Name               string       `json:"name"`
	OfficerRole        string       `json:"officer_role"`
	AppointedOn        string       `json:"appointed_on,omitempty"`
	ResignedOn         string       `json:"resigned_on,omitempty"`
	Nationality        string       `json:"nationality,omitempty"`
	CountryOfResidence string       `json:"country_of_residence,omitempty"`
	Occupation         string       `json:"occupation,omitempty"`
	DateOfBirth        *PartialDate `json:"date_of_birth,omitempty"`
	Address            *Address     `json:"address,omitempty"`
}

// Active reports whether the officer has not resigned.
func (o Officer) Active() bool { return o.ResignedOn == "" }

// FilingHistory is a page of filings.
type FilingHistory struct {
	TotalCount int      `json:"total_count"`
	Items      []Filing `json:"items"`
}

// Filing is a single document filed with the registrar.
type Filing struct {
	TransactionID     string         `json:"transaction_id"`
	Category          string         `json:"category,omitempty"`
	Type              string         `json:"type,omitempty"`
	Date              string         `json:"date,omitempty"`
	Description       string         `json:"description,omitempty"`
	DescriptionValues map[string]any `json:"description_values,omitempty"`
	Pages             int            `json:"pages,omitempty"`
}

// ChargeList is the set of charges registered against a company.
type ChargeList struct {
	TotalCount         int      `json:"total_count"`
	UnfilteredCount    int      `json:"unfiltered_count"`
	SatisfiedCount     int      `json:"satisfied_count"`
	PartSatisfiedCount int      `json:"part_satisfied_count"`
	Items              []Charge `json:"items"`
}

// Charge is a mortgage or other security registered against the company.
type Charge struct {
	ChargeCode      string               `json:"charge_code,omitempty"`
	ChargeNumber    int                  `json:"charge_number,omitempty"`
	Status          string               `json:"status"`
	Classification  ChargeClassification `json:"classification"`
	CreatedOn       string               `json:"created_on,omitempty"`
	DeliveredOn     string               `json:"delivered_on,omitempty"`
	SatisfiedOn     string               `json:"satisfied_on,omitempty"`
	PersonsEntitled []PersonEntitled     `json:"persons_entitled,omitempty"`
}

// Outstanding reports whether the charge is still in force.
func (c Charge) Outstanding() bool { return c.Status == "outstanding" }

// ChargeClassification describes the kind of charge.
type ChargeClassification struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// PersonEntitled is a chargeholder.
type PersonEntitled struct {
	Name string `json:"name"`
}

// Insolvency lists insolvency cases for a company.
type Insolvency struct {
	Status []string         `json:"status,omitempty"`
	Cases  []InsolvencyCase `json:"cases"`
}

// InsolvencyCase is a single insolvency proceeding.
type InsolvencyCase struct {
	Type          string                   `json:"type"`
	Number        string                   `json:"number,omitempty"`
	Dates         []InsolvencyDate         `json:"dates,omitempty"`
	Practitioners []InsolvencyPractitioner `json:"practitioners,omitempty"`
}

// InsolvencyDate is a dated event in an insolvency case.
type InsolvencyDate struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// InsolvencyPractitioner is an appointed insolvency practitioner.
type InsolvencyPractitioner struct {
	Name          string `json:"name"`
	Role          string `json:"role,omitempty"`
	AppointedOn   string `json:"appointed_on,omitempty"`
	CeasedToActOn string `json:"ceased_to_act_on,omitempty"`
}

// PSCList is the set of persons with significant control.
type PSCList struct {
	TotalResults int   `json:"total_results"`
	ActiveCount  int   `json:"active_count"`
	CeasedCount  int   `json:"ceased_count"`
	Items        []PSC `json:"items"`
}

// PSC is a person (or legal entity) with significant control.
type PSC struct {
	Name               string       `json:"name"`
	Kind               string       `json:"kind,omitempty"`
	NaturesOfControl   []string     `json:"natures_of_control"`
	NotifiedOn         string       `json:"notified_on,omitempty"`
	CeasedOn           string       `json:"ceased_on,omitempty"`
	Nationality        string       `json:"nationality,omitempty"`
	CountryOfResidence string       `json:"country_of_residence,omitempty"`
	DateOfBirth        *PartialDate `json:"date_of_birth,omitempty"`
}

// Active reports whether the PSC has not ceased.
func (p PSC) Active() bool { return p.CeasedOn == "" }
