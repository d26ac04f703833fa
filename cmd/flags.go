/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. Accessors are provided so extensions can read flag values
// without coupling to cobra internals. The JSON() helper simplifies output
// format detection across all commands.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/spf13/cobra"
)

// EnvAPIKey names the environment variable (or .env entry) holding the
// Companies House API key for CLI use.
const EnvAPIKey = "COMPANIES_HOUSE_API_KEY"

var validOutputFormats = []string{"json"}

var (
	output  string
	apiKey  string
	baseURL string
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Exported accessors for extensions.
// Extensions use these to access shared CLI state.

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// BaseURL returns the --base-url override, or empty to use config.
func BaseURL() string { return baseURL }

// APIKey resolves the key for this invocation.
// Priority: --api-key flag > COMPANIES_HOUSE_API_KEY env var > .env file in
// the working directory > empty. The key is read per command and never
// stored.
func APIKey() string {
	if apiKey != "" {
		return apiKey
	}
	if k := os.Getenv(EnvAPIKey); k != "" {
		return k
	}
	if env, err := godotenv.Read(".env"); err == nil {
		return strings.TrimSpace(env[EnvAPIKey])
	}
	return ""
}

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints {"error": CODE, "message": ...} if output is JSON.
// The error is always returned so the process exits non-zero; in JSON mode
// Cobra's own error line is silenced.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(service.NewErrorBody(err))
	rootCmd.SilenceErrors = true
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Companies House API key (default: $"+EnvAPIKey+" or .env)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Companies House API root (overrides api.base_url)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
