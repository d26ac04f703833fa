// registry.go holds the process-wide list of extensions.
//
// Extensions call Register from init(), before main() runs. A duplicate
// name panics, as database/sql.Register does. Order of registration is the
// order of CLI commands and MCP tools.

package extension

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string
)

// Register adds e to the registry.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Tools collects the MCP tools of all registered extensions in
// registration order. reserved lists tool names already taken by the
// server; a clash with those or between extensions is an error.
func Tools(reserved ...string) ([]MCPTool, error) {
	seen := make(map[string]string, len(reserved))
	for _, name := range reserved {
		seen[name] = "server"
	}

	var tools []MCPTool
	for _, ext := range All() {
		for _, t := range ext.MCPTools() {
			if owner, dup := seen[t.Tool.Name]; dup {
				return nil, fmt.Errorf("extension %s: tool %s already provided by %s", ext.Name(), t.Tool.Name, owner)
			}
			seen[t.Tool.Name] = ext.Name()
			tools = append(tools, t)
		}
	}
	return tools, nil
}
