// context.go defines what an extension may reach once chtools is running.
//
// Extensions register before config is read, so they cannot be handed the
// service at construction. They receive a Context in Init instead, and it
// exposes only the company service and the loaded configuration.

package extension

import (
	"github.com/jpl-au/chtools/internal/config"
	"github.com/jpl-au/chtools/internal/service"
)

// Context is passed to Initializable extensions and to MCP handlers.
type Context interface {
	// Service is the shared company service. It holds no API key; every
	// call takes the caller's.
	Service() service.Service

	// Config is the merged global and local configuration. Nil in tests
	// that only exercise the service.
	Config() *config.Config
}

type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext bundles the service and config for extensions.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{svc: svc, cfg: cfg}
}

func (c *extContext) Service() service.Service { return c.svc }

func (c *extContext) Config() *config.Config { return c.cfg }
