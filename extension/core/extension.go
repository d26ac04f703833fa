// Package core provides the core extension for chtools.
// It registers commands: config, serve, guide, llm, log, vacuum, version,
// and the chtools_guide MCP tool.
package core

import (
	"github.com/jpl-au/chtools/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Standalone    = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental chtools commands.
func (e *Extension) Name() string { return "core" }

// Init stores the shared context for serve.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		e.newServeCmd(),
		newGuideCmd(),
		newLlmCmd(),
		newLogCmd(),
		newVacuumCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns the guide tool. Company tools are built into the MCP
// server itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{guideTool()}
}

// StandaloneCommands returns commands that never call upstream.
// serve is absent: it needs the shared service.
func (e *Extension) StandaloneCommands() []string {
	return []string{"config", "guide", "llm", "log", "vacuum", "version"}
}
