// mcp.go lets extensions contribute MCP tools alongside the company tools
// registered by internal/mcp. An extension may provide none.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool is a tool definition and the function that answers it.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler answers one tool call. ctx is the request context; extCtx
// gives access to the company service and configuration.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
