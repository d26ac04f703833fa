// errors.go defines sentinel errors for validation failures.
//
// Separated to centralise error definitions. Detailed messages are provided
// by wrapping these with fmt.Errorf in the validation functions.

package validate

import "errors"

var (
	ErrInvalidCompanyNumber = errors.New("invalid company number")
	ErrInvalidQuery         = errors.New("invalid search query")
	ErrInvalidPaging        = errors.New("invalid paging")
	ErrInvalidCategory      = errors.New("invalid filing category")
)

// IsValidation reports whether err wraps any validation sentinel.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidCompanyNumber) ||
		errors.Is(err, ErrInvalidQuery) ||
		errors.Is(err, ErrInvalidPaging) ||
		errors.Is(err, ErrInvalidCategory)
}
