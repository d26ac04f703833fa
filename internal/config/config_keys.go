// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go owns the YAML structure and loading; this file
// serves the CLI and MCP surfaces where config is addressed by string keys
// (e.g., "report.filings").
//
// Pointers are used for optional numeric and boolean fields so "not set"
// (nil) is distinct from an explicit value. Defaults apply only to nil.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"api.base_url", "api.timeout",
		"search.items_per_page", "officers.items_per_page", "filings.items_per_page",
		"report.officers_per_page", "report.filings",
		"audit.enabled",
		"serve.addr", "serve.path",
	}
}

// credentialWords mark keys a user might try in order to store a secret.
var credentialWords = []string{"key", "token", "secret", "password", "auth"}

// IsCredentialKey reports whether key looks like an attempt to store a
// credential. No such key exists; callers use this to point the user at
// the supported ways of passing one.
func IsCredentialKey(key string) bool {
	k := strings.ToLower(key)
	for _, w := range credentialWords {
		if strings.Contains(k, w) {
			return true
		}
	}
	return false
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.base_url":
		return c.BaseURL(), nil
	case "api.timeout":
		return c.Timeout().String(), nil
	case "search.items_per_page":
		return strconv.Itoa(c.SearchItems()), nil
	case "officers.items_per_page":
		return strconv.Itoa(c.OfficersItems()), nil
	case "filings.items_per_page":
		return strconv.Itoa(c.FilingsItems()), nil
	case "report.officers_per_page":
		return strconv.Itoa(c.ReportOfficers()), nil
	case "report.filings":
		return strconv.Itoa(c.ReportFilings()), nil
	case "audit.enabled":
		return strconv.FormatBool(c.AuditEnabled()), nil
	case "serve.addr":
		return c.ServeAddr(), nil
	case "serve.path":
		return c.ServePath(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api.base_url":
		v := strings.TrimRight(strings.TrimSpace(value), "/")
		if err := checkBaseURL(v); err != nil {
			return err
		}
		c.API.BaseURL = v
	case "api.timeout":
		if _, err := parseTimeout(value); err != nil {
			return err
		}
		c.API.Timeout = value
	case "search.items_per_page":
		return c.setPageSize(key, value, &c.Search.ItemsPerPage)
	case "officers.items_per_page":
		return c.setPageSize(key, value, &c.Officers.ItemsPerPage)
	case "filings.items_per_page":
		return c.setPageSize(key, value, &c.Filings.ItemsPerPage)
	case "report.officers_per_page":
		return c.setPageSize(key, value, &c.Report.OfficersPerPage)
	case "report.filings":
		return c.setPageSize(key, value, &c.Report.Filings)
	case "audit.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: audit.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Audit.Enabled = &b
	case "serve.addr":
		if value == "" {
			return fmt.Errorf("%w: serve.addr must not be empty", ErrInvalidValue)
		}
		c.Serve.Addr = value
	case "serve.path":
		if !strings.HasPrefix(value, "/") {
			return fmt.Errorf("%w: serve.path must start with /", ErrInvalidValue)
		}
		c.Serve.Path = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func (c *Config) setPageSize(key, value string, dst **int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer", ErrInvalidValue, key)
	}
	if err := checkPageSize(key, n); err != nil {
		return err
	}
	*dst = &n
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "api.base_url":
		return c.API.BaseURL != ""
	case "api.timeout":
		return c.API.Timeout != ""
	case "search.items_per_page":
		return c.Search.ItemsPerPage != nil
	case "officers.items_per_page":
		return c.Officers.ItemsPerPage != nil
	case "filings.items_per_page":
		return c.Filings.ItemsPerPage != nil
	case "report.officers_per_page":
		return c.Report.OfficersPerPage != nil
	case "report.filings":
		return c.Report.Filings != nil
	case "audit.enabled":
		return c.Audit.Enabled != nil
	case "serve.addr":
		return c.Serve.Addr != ""
	case "serve.path":
		return c.Serve.Path != ""
	default:
		return false
	}
}
