// Package config provides reading and writing of chtools configuration.
// Supports both global (~/.chtools/config.yaml) and local (.chtools/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// There is no key for the Companies House API key. Credentials are passed
// per call and never persisted.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the name of the configuration directory, both in the home
// directory and the working directory.
const Dir = ".chtools"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.chtools/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .chtools/config.yaml
	ScopeLocal
)

// API holds upstream connection settings.
type API struct {
	BaseURL string `yaml:"base_url,omitempty"`
	Timeout string `yaml:"timeout,omitempty"` // Go duration, e.g. "10s"
}

// Paging holds a default page size for one list tool.
type Paging struct {
	ItemsPerPage *int `yaml:"items_per_page,omitempty"`
}

// Report holds fetch sizes for the comprehensive report.
type Report struct {
	OfficersPerPage *int `yaml:"officers_per_page,omitempty"`
	Filings         *int `yaml:"filings,omitempty"`
}

// Audit controls the local audit log.
type Audit struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Serve holds MCP HTTP transport settings.
type Serve struct {
	Addr string `yaml:"addr,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultBaseURL        = "https://api.company-information.service.gov.uk"
	DefaultTimeout        = 10 * time.Second
	DefaultSearchItems    = 5
	DefaultOfficersItems  = 20
	DefaultFilingsItems   = 20
	DefaultReportOfficers = 100
	DefaultReportFilings  = 10
	DefaultServeAddr      = ":8001"
	DefaultServePath      = "/mcp"
	DefaultAuditEnabled   = true
)

// Validation bounds for configuration values.
const (
	MinItemsPerPage = 1
	MaxItemsPerPage = 100
	MinTimeout      = 100 * time.Millisecond
	MaxTimeout      = 5 * time.Minute
)

// Config contains configuration for chtools.
type Config struct {
	API      API    `yaml:"api,omitempty"`
	Search   Paging `yaml:"search,omitempty"`
	Officers Paging `yaml:"officers,omitempty"`
	Filings  Paging `yaml:"filings,omitempty"`
	Report   Report `yaml:"report,omitempty"`
	Audit    Audit  `yaml:"audit,omitempty"`
	Serve    Serve  `yaml:"serve,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.API.BaseURL != "" {
		if err := checkBaseURL(c.API.BaseURL); err != nil {
			return err
		}
	}
	if c.API.Timeout != "" {
		if _, err := parseTimeout(c.API.Timeout); err != nil {
			return err
		}
	}
	pages := []struct {
		key string
		v   *int
	}{
		{"search.items_per_page", c.Search.ItemsPerPage},
		{"officers.items_per_page", c.Officers.ItemsPerPage},
		{"filings.items_per_page", c.Filings.ItemsPerPage},
		{"report.officers_per_page", c.Report.OfficersPerPage},
		{"report.filings", c.Report.Filings},
	}
	for _, p := range pages {
		if p.v == nil {
			continue
		}
		if err := checkPageSize(p.key, *p.v); err != nil {
			return err
		}
	}
	return nil
}

func checkPageSize(key string, v int) error {
	if v < MinItemsPerPage || v > MaxItemsPerPage {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d",
			ErrInvalidValue, key, MinItemsPerPage, MaxItemsPerPage, v)
	}
	return nil
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api.base_url must be an http(s) URL, got %q", ErrInvalidValue, raw)
	}
	return nil
}

func parseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil || d < MinTimeout || d > MaxTimeout {
		return 0, fmt.Errorf("%w: api.timeout must be a duration between %s and %s, got %q",
			ErrInvalidValue, MinTimeout, MaxTimeout, raw)
	}
	return d, nil
}

// BaseURL returns the upstream API root (defaults to the live service).
func (c *Config) BaseURL() string {
	if c.API.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.API.BaseURL
}

// Timeout returns the per-request upstream timeout (defaults to 10s).
func (c *Config) Timeout() time.Duration {
	d, err := parseTimeout(c.API.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// SearchItems returns the default search page size (defaults to 5).
func (c *Config) SearchItems() int { return intOr(c.Search.ItemsPerPage, DefaultSearchItems) }

// OfficersItems returns the default officers page size (defaults to 20).
func (c *Config) OfficersItems() int { return intOr(c.Officers.ItemsPerPage, DefaultOfficersItems) }

// FilingsItems returns the default filing history page size (defaults to 20).
func (c *Config) FilingsItems() int { return intOr(c.Filings.ItemsPerPage, DefaultFilingsItems) }

// ReportOfficers returns how many officers the report requests (defaults to 100).
func (c *Config) ReportOfficers() int { return intOr(c.Report.OfficersPerPage, DefaultReportOfficers) }

// ReportFilings returns how many recent filings the report includes (defaults to 10).
func (c *Config) ReportFilings() int { return intOr(c.Report.Filings, DefaultReportFilings) }

// AuditEnabled returns whether the audit log is written (defaults to true).
func (c *Config) AuditEnabled() bool {
	if c.Audit.Enabled == nil {
		return DefaultAuditEnabled
	}
	return *c.Audit.Enabled
}

// ServeAddr returns the HTTP listen address (defaults to ":8001").
func (c *Config) ServeAddr() string {
	if c.Serve.Addr == "" {
		return DefaultServeAddr
	}
	return c.Serve.Addr
}

// ServePath returns the HTTP endpoint path (defaults to "/mcp").
func (c *Config) ServePath() string {
	if c.Serve.Path == "" {
		return DefaultServePath
	}
	return c.Serve.Path
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// LocalPath returns the path to the local (working directory) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.chtools/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
