// serve.go implements the "chtools serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks until interrupted,
// handling MCP requests over stdio or HTTP.

package core

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpl-au/chtools/cmd"
	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server for LLM integration.

  chtools serve                                  # stdio
  chtools serve --transport http                 # streamable HTTP on serve.addr
  chtools serve --transport http --addr :9000    # override the address

The server holds no API key. Clients pass api_key with every tool call.`,
		Args: cobra.NoArgs,
		RunE: e.runServe,
	}
	c.Flags().String(extension.FlagTransport, mcp.TransportStdio, "Transport: stdio or http")
	c.Flags().String(extension.FlagAddr, "", "HTTP listen address (default serve.addr)")
	c.Flags().String(extension.FlagPath, "", "HTTP endpoint path (default serve.path)")
	return c
}

func (e *Extension) runServe(c *cobra.Command, _ []string) error {
	if e.ctx == nil {
		return errors.New("serve: service not initialised")
	}

	cfg := e.ctx.Config()
	opts := mcp.Options{Addr: cfg.ServeAddr(), Path: cfg.ServePath()}
	opts.Transport, _ = c.Flags().GetString(extension.FlagTransport)
	if v, _ := c.Flags().GetString(extension.FlagAddr); v != "" {
		opts.Addr = v
	}
	if v, _ := c.Flags().GetString(extension.FlagPath); v != "" {
		opts.Path = v
	}

	s, err := mcp.New(e.ctx.Service(), e.ctx)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcp.Serve(ctx, s, opts)
}
