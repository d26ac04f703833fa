// Package all imports all core chtools extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/chtools/extension/company"
	_ "github.com/jpl-au/chtools/extension/core"
)
