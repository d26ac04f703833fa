// errors.go defines the error kinds surfaced by the Companies House client.
//
// Every failure returned by Client wraps exactly one of the sentinels below,
// so callers classify with errors.Is rather than inspecting status codes.
// HTTP failures carry the status and upstream message in a StatusError.

package companieshouse

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthentication indicates a missing, invalid or revoked API key.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotFound indicates the company or resource does not exist upstream.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited indicates upstream answered 429. The request is not retried.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnavailable covers network failures, timeouts, 5xx responses and
	// bodies that cannot be decoded.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrRejected covers any other 4xx response (bad parameters and so on).
	ErrRejected = errors.New("request rejected by upstream")
)

// StatusError is returned when upstream answers with a non-200 status.
type StatusError struct {
	Status   int    // HTTP status code
	Endpoint string // request path without query, never includes credentials
	Message  string // upstream error text, trimmed
	kind     error
}

// NewStatusError builds the error for a non-200 response, classifying it
// by status.
func NewStatusError(status int, endpoint, message string) *StatusError {
	return &StatusError{Status: status, Endpoint: endpoint, Message: message, kind: kindForStatus(status)}
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Endpoint, e.kind, e.Status)
	}
	return fmt.Sprintf("%s: %s (HTTP %d): %s", e.Endpoint, e.kind, e.Status, e.Message)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *StatusError) Unwrap() error { return e.kind }

// kindForStatus maps an HTTP status to its sentinel.
func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrAuthentication
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 500:
		return ErrUnavailable
	default:
		return ErrRejected
	}
}

// Code returns the stable error code reported to tool callers for err.
// Unknown errors map to "EXCEPTION".
func Code(err error) string {
	switch {
	case errors.Is(err, ErrAuthentication):
		return "UNAUTHORISED"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrRateLimited):
		return "RATE_LIMIT"
	case errors.Is(err, ErrUnavailable):
		return "UPSTREAM_UNAVAILABLE"
	case errors.Is(err, ErrRejected):
		return "API_ERROR"
	default:
		return "EXCEPTION"
	}
}
