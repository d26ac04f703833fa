// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> extension -> service -> HTTP client -> fake upstream.
//
// The binary is built once and run against an in-process Companies House
// fake (internal/companieshouse/chtest) via --base-url. HOME points at a
// temp dir so global config and the audit log never touch the real user's.

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jpl-au/chtools/internal/companieshouse/chtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the chtools binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "chtools-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "chtools"
		if os.PathSeparator == '\\' {
			binaryName = "chtools.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t        *testing.T
	dir      string // working directory
	home     string // HOME for the binary
	binary   string
	upstream *chtest.Server
	env      []string // extra environment, KEY=value
}

// newTestEnv creates a temporary working directory and home, and starts a
// fake upstream.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	up := chtest.New()
	t.Cleanup(up.Close)

	return &testEnv{
		t:        t,
		dir:      t.TempDir(),
		home:     t.TempDir(),
		binary:   buildBinary(t),
		upstream: up,
	}
}

// environ returns the process environment with HOME replaced and any API
// key from the developer's shell removed.
func (e *testEnv) environ() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, EnvAPIKey+"=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "HOME="+e.home, "USERPROFILE="+e.home)
	return append(env, e.env...)
}

// run executes chtools against the fake upstream and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, stderr, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("chtools %v failed: %v\nstdout: %s\nstderr: %s", args, err, out, stderr)
	}
	return out
}

// runErr executes chtools and returns stdout, stderr and any error.
func (e *testEnv) runErr(args ...string) (string, string, error) {
	e.t.Helper()

	args = append([]string{"--base-url", e.upstream.URL}, args...)
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.environ()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// runJSON executes chtools with -o json and decodes stdout into v.
func (e *testEnv) runJSON(v any, args ...string) error {
	e.t.Helper()
	out, stderr, err := e.runErr(append(args, "-o", "json")...)
	require.NoError(e.t, json.Unmarshal([]byte(out), v), "stdout: %s\nstderr: %s", out, stderr)
	return err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
