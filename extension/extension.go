// Package extension provides the plugin architecture for chtools. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for chtools extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions can perform setup once the service exists.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// don't need the company service. Commands returned by StandaloneCommands()
// do not trigger service construction in PersistentPreRunE, so they keep
// working when the configuration is broken.
//
// Use cases:
// 1. Commands that repair or inspect configuration (config)
// 2. Utility commands that never call upstream (guide, version, log, vacuum)
type Standalone interface {
	StandaloneCommands() []string
}
