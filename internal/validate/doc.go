// Package validate provides input validation for chtools tool arguments.
//
// Validation runs before any network call, so malformed input is rejected
// locally instead of spending an upstream request on it. Each function
// returns the normalised value or an error wrapping one of the sentinels in
// errors.go.
//
// # Validation Functions
//
// CompanyNumber normalises and checks a Companies House registration number.
// Query checks a free-text search query.
// Paging checks items_per_page and start_index.
// FilingCategory checks a filing history category filter.
//
// # Error Handling
//
// Use errors.Is against the sentinels, or IsValidation to test for any of them:
//
//	if validate.IsValidation(err) {
//	    // report as a VALIDATION error
//	}
package validate
