// tools_util.go provides helper functions for MCP tool parameter extraction
// and result encoding.
//
// Extraction is permissive: a missing or mistyped optional parameter falls
// back to the default rather than failing the call. LLMs frequently omit
// optional parameters or send numbers as strings; required parameters are
// still checked, by the service, which reports a VALIDATION error.

package mcp

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jpl-au/chtools/internal/log"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def if it is missing or
// not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getInt extracts an integer parameter. JSON numbers decode as float64;
// numeric strings are accepted too. Returns def if missing or unparseable.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func itoa(n int) string { return strconv.Itoa(n) }

// jsonResult serialises v as pretty-printed JSON in a text result.
// Indented output is slightly larger but parsed more reliably by LLMs.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult wraps err as an MCP error result whose text is the JSON
// object {"error": CODE, "message": ...}.
func errorResult(err error) *mcp.CallToolResult {
	data, mErr := json.Marshal(service.NewErrorBody(err))
	if mErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(data))
}

// finish writes the audit entry for a tool call and converts err into a
// tool result. A nil err returns v as JSON.
func finish(l *log.Builder, v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		l.Code(service.ErrorCode(err)).Write(err)
		return errorResult(err), nil
	}
	l.Write(nil)
	return jsonResult(v)
}
