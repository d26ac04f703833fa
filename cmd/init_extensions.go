/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, builds the company service, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before config is read. The service is created once
// and shared across all extensions via the Context. It holds no API key;
// commands resolve the key themselves with APIKey().

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/company"
	"github.com/jpl-au/chtools/internal/config"
)

// standaloneCommands lists commands that bypass service initialisation.
// Built dynamically from bootstrap commands plus extension-declared
// standalone commands.
var standaloneCommands map[string]bool

// buildStandaloneCommands creates the set of commands that skip service
// initialisation.
//
// Most commands need the company service, which needs a valid config. Some
// must work without one: "guide" explains how to fix a bad config and
// "config" is how you fix it. Extensions implement extension.Standalone to
// add their own.
func buildStandaloneCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Standalone); ok {
			for _, name := range s.StandaloneCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions creates the company service and injects it into extensions.
//
// sync.Once guarantees one service per process: the HTTP client inside it
// pools connections, and serve shares it across every tool call.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		if baseURL != "" {
			if err := cfg.Set("api.base_url", baseURL); err != nil {
				initErr = fmt.Errorf("--base-url: %w", err)
				return
			}
		}

		svc, err := company.New(company.OptionsFromConfig(cfg))
		if err != nil {
			initErr = fmt.Errorf("creating service: %w", err)
			return
		}
		extContext = extension.NewContext(svc, cfg)

		// Inject the shared context into all Initializable extensions.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build standaloneCommands after all extensions are registered
		standaloneCommands = buildStandaloneCommands()
	})
}
