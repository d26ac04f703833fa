// errors.go maps operation errors to the stable codes reported to callers.
//
// Both the MCP tools and the CLI's JSON output report failures as
// {"error": CODE, "message": ...}. The code is what callers branch on; the
// message is for humans and may change.

package service

import (
	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/validate"
)

// Error codes.
const (
	CodeUnauthorised = "UNAUTHORISED"
	CodeNotFound     = "NOT_FOUND"
	CodeRateLimit    = "RATE_LIMIT"
	CodeUnavailable  = "UPSTREAM_UNAVAILABLE"
	CodeAPIError     = "API_ERROR"
	CodeValidation   = "VALIDATION"
	CodeException    = "EXCEPTION"
)

// ErrorCode classifies err. Validation failures are checked first since
// they never reach upstream.
func ErrorCode(err error) string {
	if validate.IsValidation(err) {
		return CodeValidation
	}
	return companieshouse.Code(err)
}

// ErrorBody is the structured error returned to callers.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorBody builds the structured form of err.
func NewErrorBody(err error) ErrorBody {
	return ErrorBody{Error: ErrorCode(err), Message: err.Error()}
}
