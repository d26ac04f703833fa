// guide.go implements the "chtools guide" and "chtools llm" commands and
// the chtools_guide MCP tool.
//
// Guides are embedded in the binary via the guide package, so the same
// pages serve the terminal, pipes and MCP clients.

package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/chtools/cmd"
	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/guide"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

// ToolGuide is the MCP tool name for guide pages.
const ToolGuide = "chtools_guide"

func newGuideCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the chtools usage guide",
		Long: `Outputs the chtools guide for LLMs and humans.

  chtools guide             # main guide
  chtools guide report      # the comprehensive report
  chtools guide ownership   # how ownership is estimated`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return printGuide(c, name)
		},
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without terminal rendering")
	return c
}

func newLlmCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "llm",
		Short: "Getting started guide for LLMs",
		Long:  `Quick reference for LLMs: which tool to call first and how to read errors.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return printGuide(c, "llm")
		},
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without terminal rendering")
	return c
}

func printGuide(c *cobra.Command, name string) error {
	content, err := lookupGuide(name)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
	}
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	cmd.PrintMarkdown(content, raw)
	return nil
}

// lookupGuide returns a page or an error naming the available topics.
func lookupGuide(name string) (string, error) {
	content, err := guide.Get(name)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return "", listErr
		}
		return "", fmt.Errorf("%w. Available: %s", err, strings.Join(available, ", "))
	}
	return content, nil
}

func guideTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool(ToolGuide,
			mcp.WithDescription("Read the chtools guide: tools, report fields, ownership estimates, error codes. Call with no topic for the overview."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithString("topic", mcp.Description("Guide topic, e.g. tools, report, ownership, errors")),
		),
		Handler: func(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			topic, _ := req.RequireString("topic")
			l := log.Event("mcp:"+ToolGuide, "guide").Detail("topic", topic)
			content, err := lookupGuide(topic)
			l.Write(err)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(content), nil
		},
	}
}
