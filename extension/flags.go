// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos when flag names
// are used in both Flags().Type() definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "start-index" -> FlagStartIndex).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDryRun = "dry-run" // Show what would happen without doing it
	FlagFailed = "failed"  // Only failed entries
	FlagForce  = "force"   // Skip confirmation
	FlagLocal  = "local"   // Use local scope (.chtools/config.yaml)
	FlagRaw    = "raw"     // Raw output without terminal rendering

	// String flags

	FlagAddr      = "addr"       // HTTP listen address
	FlagCategory  = "category"   // Filing history category filter
	FlagCompany   = "company"    // Company number filter
	FlagOlderThan = "older-than" // Retention cutoff (7d, 4w, 3m)
	FlagPath      = "path"       // HTTP endpoint path
	FlagSource    = "source"     // Audit source prefix filter
	FlagTransport = "transport"  // MCP transport: stdio or http

	// Integer flags

	FlagItems      = "items"       // items_per_page
	FlagLimit      = "limit"       // Maximum entries shown
	FlagStartIndex = "start-index" // start_index
)
