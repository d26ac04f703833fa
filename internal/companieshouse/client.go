// Package companieshouse is a thin client for the UK Companies House public
// REST API. Each method issues exactly one GET request, authenticated with
// the API key supplied for that call, and decodes the response into a
// trimmed struct.
//
// The client holds no credentials. Keys travel as a per-call argument and
// are only ever placed in the request's basic-auth header, so they never
// appear in URLs, errors or logs.
package companieshouse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the live Companies House API.
const DefaultBaseURL = "https://api.company-information.service.gov.uk"

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error body is kept in StatusError.
const maxErrorBody = 512

// Options configures a Client.
type Options struct {
	BaseURL    string        // defaults to DefaultBaseURL
	Timeout    time.Duration // defaults to DefaultTimeout
	UserAgent  string        // optional
	HTTPClient *http.Client  // optional; Timeout is ignored when set
}

// Client issues requests to the Companies House API.
type Client struct {
	base      *url.URL
	http      *http.Client
	userAgent string
}

// New creates a client. Returns an error if the base URL is malformed.
func New(opts Options) (*Client, error) {
	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", raw)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{base: base, http: hc, userAgent: opts.UserAgent}, nil
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string { return c.base.String() }

// get performs an authenticated GET and decodes a 200 response into out.
func (c *Client) get(ctx context.Context, apiKey, endpoint string, query url.Values, out any) error {
	if strings.TrimSpace(apiKey) == "" {
		return fmt.Errorf("%w: api key required", ErrAuthentication)
	}

	u := *c.base
	u.Path = c.base.Path + endpoint
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", endpoint, err)
	}
	req.SetBasicAuth(apiKey, "")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w: %w", endpoint, ErrUnavailable, ctxErr)
		}
		return fmt.Errorf("%s: %w: %v", endpoint, ErrUnavailable, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NewStatusError(resp.StatusCode, endpoint, readMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: decoding response: %v", endpoint, ErrUnavailable, err)
	}
	return nil
}

// readMessage extracts a short error description from an upstream error body.
// Companies House sends either {"errors":[{"error":"..."}]}, {"error":"..."}
// or plain text.
func readMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var body struct {
		Error  string `json:"error"`
		Errors []struct {
			Error string `json:"error"`
		} `json:"errors"`
	}
	if json.Unmarshal(data, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if len(body.Errors) > 0 && body.Errors[0].Error != "" {
			return body.Errors[0].Error
		}
	}
	return strings.TrimSpace(string(data))
}

// redact strips the request URL from transport errors. The URL carries no
// credential, but keeping error text to the cause keeps tool output short.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// pageQuery builds items_per_page/start_index parameters, omitting zero values.
func pageQuery(itemsPerPage, startIndex int) url.Values {
	q := url.Values{}
	if itemsPerPage > 0 {
		q.Set("items_per_page", strconv.Itoa(itemsPerPage))
	}
	if startIndex > 0 {
		q.Set("start_index", strconv.Itoa(startIndex))
	}
	return q
}
