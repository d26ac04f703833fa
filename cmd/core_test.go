package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/chtools/internal/companieshouse/chtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetGet(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.run("config", "report.filings", "25"), "report.filings = 25 (global)")
	env.equals(env.run("config", "report.filings"), "25")
	assert.FileExists(t, filepath.Join(env.home, ".chtools", "config.yaml"))

	out := env.run("config")
	env.contains(out, "report.filings: 25")
	env.contains(out, "api.timeout: 10s")
}

func TestConfig_Local(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.run("config", "--local", "search.items_per_page", "7"), "(local)")
	assert.FileExists(t, filepath.Join(env.dir, ".chtools", "config.yaml"))

	env.run("search", "acme", "--api-key", chtest.Key)
	assert.Equal(t, []string{"/search/companies?items_per_page=7&q=acme"}, env.upstream.Requests())
}

func TestConfig_RejectsAPIKey(t *testing.T) {
	env := newTestEnv(t)

	_, stderr, err := env.runErr("config", "api.key", chtest.Key)
	require.Error(t, err)
	assert.Contains(t, stderr, "credentials are never stored")
	assert.NotContains(t, stderr, chtest.Key)
	assert.NoFileExists(t, filepath.Join(env.home, ".chtools", "config.yaml"))
}

func TestConfig_BrokenStillLetsYouFixIt(t *testing.T) {
	env := newTestEnv(t)
	dir := filepath.Join(env.home, ".chtools")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("report:\n  filings: 500\n"), 0644))

	_, _, err := env.runErr("report", chtest.Company, "--api-key", chtest.Key)
	require.Error(t, err, "out-of-range config must fail service init")

	env.contains(env.run("guide", "config"), "report.filings")
}

func TestAuditLog_NeverRecordsKey(t *testing.T) {
	env := newTestEnv(t)
	const secret = "secret-key-do-not-log"

	_, _, _ = env.runErr("report", chtest.Company, "--api-key", secret)
	env.run("profile", chtest.Company, "--api-key", chtest.Key)

	var entries []struct {
		Source  string `json:"source"`
		Company string `json:"company"`
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	require.NoError(t, env.runJSON(&entries, "log", "--source", "company:"))
	require.Len(t, entries, 2)
	assert.Equal(t, "company:profile", entries[0].Source)
	assert.True(t, entries[0].Success)
	assert.Equal(t, "company:report", entries[1].Source)
	assert.Equal(t, "UNAUTHORISED", entries[1].Code)

	for _, name := range []string{"chtools-log.db", "chtools-log.db-wal"} {
		data, err := os.ReadFile(filepath.Join(env.home, ".chtools", "log", name))
		if err != nil {
			continue
		}
		assert.NotContains(t, string(data), secret)
		assert.NotContains(t, string(data), chtest.Key)
	}
}

func TestAuditLog_Disabled(t *testing.T) {
	env := newTestEnv(t)
	dir := filepath.Join(env.home, ".chtools")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("audit:\n  enabled: false\n"), 0644))

	env.run("profile", chtest.Company, "--api-key", chtest.Key)

	_, _, err := env.runErr("log")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(env.home, ".chtools", "log", "chtools-log.db"))
}

func TestVacuum_DryRun(t *testing.T) {
	env := newTestEnv(t)
	env.run("profile", chtest.Company, "--api-key", chtest.Key)

	env.contains(env.run("vacuum", "--older-than", "1d", "--dry-run"), "Would delete 0 entries")

	_, _, err := env.runErr("vacuum", "--older-than", "soon")
	assert.Error(t, err)
}

func TestGuide(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.run("guide"), "# chtools")
	env.contains(env.run("guide", "ownership"), "37.5")
	env.contains(env.run("llm"), "generate_company_report")

	_, _, err := env.runErr("guide", "nope")
	assert.Error(t, err)
}

func TestVersion_JSON(t *testing.T) {
	env := newTestEnv(t)

	var info map[string]any
	require.NoError(t, env.runJSON(&info, "version"))
	assert.Contains(t, info, "build_tag")
}

func TestServe_UnknownTransport(t *testing.T) {
	env := newTestEnv(t)

	_, stderr, err := env.runErr("serve", "--transport", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, stderr, "unknown transport")
}
