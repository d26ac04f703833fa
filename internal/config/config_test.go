package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDirs points HOME and the working directory at fresh temp dirs.
func setupDirs(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work), "chdir to temp")
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
	return home, work
}

func TestDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, 10*time.Second, c.Timeout())
	assert.Equal(t, 5, c.SearchItems())
	assert.Equal(t, 20, c.OfficersItems())
	assert.Equal(t, 20, c.FilingsItems())
	assert.Equal(t, 100, c.ReportOfficers())
	assert.Equal(t, 10, c.ReportFilings())
	assert.True(t, c.AuditEnabled())
	assert.Equal(t, ":8001", c.ServeAddr())
	assert.Equal(t, "/mcp", c.ServePath())
	for _, k := range ValidKeys() {
		assert.False(t, c.IsSet(k), k)
	}
}

func TestSetGet(t *testing.T) {
	var c Config
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"api.base_url", "http://127.0.0.1:9000/", "http://127.0.0.1:9000"},
		{"api.timeout", "3s", "3s"},
		{"search.items_per_page", "7", "7"},
		{"officers.items_per_page", "50", "50"},
		{"filings.items_per_page", "1", "1"},
		{"report.officers_per_page", "100", "100"},
		{"report.filings", "25", "25"},
		{"audit.enabled", "FALSE", "false"},
		{"serve.addr", "127.0.0.1:9090", "127.0.0.1:9090"},
		{"serve.path", "/rpc", "/rpc"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			require.NoError(t, c.Set(tc.key, tc.value))
			got, err := c.Get(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, c.IsSet(tc.key))
		})
	}
}

func TestSet_Invalid(t *testing.T) {
	var c Config
	tests := []struct {
		key   string
		value string
	}{
		{"api.base_url", "not a url"},
		{"api.base_url", "ftp://example.com"},
		{"api.timeout", "soon"},
		{"api.timeout", "1ms"},
		{"search.items_per_page", "0"},
		{"officers.items_per_page", "101"},
		{"report.filings", "ten"},
		{"audit.enabled", "yes"},
		{"serve.addr", ""},
		{"serve.path", "mcp"},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			assert.ErrorIs(t, c.Set(tc.key, tc.value), ErrInvalidValue)
		})
	}

	assert.ErrorIs(t, c.Set("api.key", "secret"), ErrUnknownKey)
	_, err := c.Get("api.key")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestNoCredentialKey(t *testing.T) {
	for _, k := range ValidKeys() {
		assert.False(t, IsCredentialKey(k), k)
	}
	for _, k := range []string{"api.key", "API_KEY", "companies_house.token", "auth.password"} {
		assert.True(t, IsCredentialKey(k), k)
	}
}

func TestAll(t *testing.T) {
	var c Config
	require.NoError(t, c.Set("report.filings", "3"))
	all := c.All()
	assert.Len(t, all, len(ValidKeys()))
	assert.Equal(t, "3", all["report.filings"])
	assert.Equal(t, "true", all["audit.enabled"])
}

func TestSaveLoad_Scopes(t *testing.T) {
	home, _ := setupDirs(t)

	global, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, global.Set("search.items_per_page", "9"))
	require.NoError(t, global.Save())
	assert.FileExists(t, filepath.Join(home, ".chtools", "config.yaml"))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, c.Scope())
	assert.Equal(t, 9, c.SearchItems())

	local := &Config{}
	require.NoError(t, local.Set("search.items_per_page", "11"))
	require.NoError(t, local.SaveScope(ScopeLocal))

	c, err = Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, c.Scope())
	assert.Equal(t, 11, c.SearchItems())
}

func TestLoad_Malformed(t *testing.T) {
	setupDirs(t)
	require.NoError(t, os.MkdirAll(Dir, 0755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("api: [unclosed"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed config file")
}

func TestLoad_OutOfBounds(t *testing.T) {
	setupDirs(t)
	require.NoError(t, os.MkdirAll(Dir, 0755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("report:\n  filings: 500\n"), 0644))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}
