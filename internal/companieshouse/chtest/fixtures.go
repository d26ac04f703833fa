package chtest

// unavailable marks a section that answers 503.
const unavailable = "<unavailable>"

const searchAcme = `{
  "total_results": 1,
  "items_per_page": 5,
  "start_index": 0,
  "kind": "search#companies",
  "items": [{
    "company_number": "01234567",
    "title": "ACME WIDGETS LIMITED",
    "company_status": "active",
    "company_type": "ltd",
    "date_of_creation": "2001-02-03",
    "address_snippet": "1 High Street, Testville, AB1 2CD",
    "address": {"address_line_1": "1 High Street", "locality": "Testville", "postal_code": "AB1 2CD"},
    "links": {"self": "/company/01234567"}
  }]
}`

// fixtures maps company number to section name to response body.
// The profile is the empty section name. Missing sections answer 404.
var fixtures = map[string]map[string]string{
	Company: {
		"": `{
  "company_number": "01234567",
  "company_name": "ACME WIDGETS LIMITED",
  "company_status": "active",
  "type": "ltd",
  "jurisdiction": "england-wales",
  "date_of_creation": "2001-02-03",
  "sic_codes": ["62012"],
  "has_charges": false,
  "has_insolvency_history": false,
  "registered_office_address": {"address_line_1": "1 High Street", "locality": "Testville", "postal_code": "AB1 2CD", "country": "England"},
  "accounts": {"next_due": "2025-12-31", "overdue": false},
  "confirmation_statement": {"next_due": "2025-03-01", "overdue": false},
  "etag": "abc123",
  "links": {"self": "/company/01234567"}
}`,
		"officers": `{
  "total_results": 3,
  "active_count": 2,
  "resigned_count": 1,
  "items_per_page": 20,
  "start_index": 0,
  "items": [
    {"name": "SMITH, Jane Elizabeth", "officer_role": "director", "appointed_on": "2001-02-03", "nationality": "British", "country_of_residence": "England", "occupation": "Engineer"},
    {"name": "BROWN, Robert", "officer_role": "secretary", "appointed_on": "2001-02-03"},
    {"name": "OLD, Former", "officer_role": "director", "appointed_on": "2001-02-03", "resigned_on": "2010-01-01"}
  ]
}`,
		"persons-with-significant-control": `{
  "total_results": 2,
  "active_count": 2,
  "ceased_count": 0,
  "items": [
    {"name": "Mrs Jane Elizabeth Smith", "kind": "individual-person-with-significant-control", "notified_on": "2016-04-06", "nationality": "British", "country_of_residence": "England",
     "natures_of_control": ["ownership-of-shares-50-to-75-percent", "voting-rights-50-to-75-percent"]},
    {"name": "Holdco Limited", "kind": "corporate-entity-person-with-significant-control", "notified_on": "2016-04-06",
     "natures_of_control": ["ownership-of-shares-25-to-50-percent"]}
  ]
}`,
		"filing-history": `{
  "total_count": 2,
  "items_per_page": 20,
  "start_index": 0,
  "items": [
    {"transaction_id": "MzAwMDAwMDAwMQ", "category": "accounts", "type": "AA", "date": "2024-09-30", "description": "accounts-with-accounts-type-micro-entity"},
    {"transaction_id": "MzAwMDAwMDAwMg", "category": "confirmation-statement", "type": "CS01", "date": "2024-03-01", "description": "confirmation-statement-with-no-updates"}
  ]
}`,
		"registered-office-address": `{"address_line_1": "1 High Street", "locality": "Testville", "postal_code": "AB1 2CD", "country": "England"}`,
	},
	FlakyCompany: {
		"": `{
  "company_number": "SC123456",
  "company_name": "FLAKY HOLDINGS LTD",
  "company_status": "active",
  "type": "ltd",
  "jurisdiction": "scotland",
  "date_of_creation": "2015-06-01",
  "registered_office_address": {"address_line_1": "2 Castle Wynd", "locality": "Edinburgh", "postal_code": "EH1 1AA"}
}`,
		"officers": `{"items": [{"name": "MACLEOD, Iain", "officer_role": "director", "appointed_on": "2015-06-01"}]}`,
		"persons-with-significant-control": `{"items": [{"name": "Mr Iain Macleod", "kind": "individual-person-with-significant-control",
  "natures_of_control": ["ownership-of-shares-75-to-100-percent", "voting-rights-75-to-100-percent", "right-to-appoint-and-remove-directors"]}]}`,
		"charges": `{"total_count": 2, "satisfied_count": 1, "items": [
  {"charge_number": 1, "status": "outstanding", "classification": {"type": "charge-description", "description": "A registered charge"}, "created_on": "2018-01-01", "persons_entitled": [{"name": "Big Bank PLC"}]},
  {"charge_number": 2, "status": "fully-satisfied", "created_on": "2016-01-01", "satisfied_on": "2019-01-01"}
]}`,
		"insolvency":     unavailable,
		"filing-history": `{"items": [{"transaction_id": "X1", "category": "incorporation", "type": "NEWINC", "date": "2015-06-01", "description": "incorporation-company"}]}`,
	},
}
