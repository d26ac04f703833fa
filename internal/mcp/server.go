// Package mcp implements the Model Context Protocol server, exposing
// Companies House lookups and the company report to LLM agents.
//
// The server holds no credentials. Every tool takes an api_key argument
// that is passed to the service for that call only; the key is never read
// from the environment, logged or stored.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/jpl-au/chtools/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Name is advertised to clients during initialisation.
const Name = "chtools"

// Transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// ErrUnknownTransport is returned by Serve for a transport other than
// stdio or http.
var ErrUnknownTransport = errors.New("unknown transport")

// Options configures Serve.
type Options struct {
	Transport string // stdio (default) or http
	Addr      string // listen address for http
	Path      string // endpoint path for http
}

// handlers provides MCP request handlers with access to the company service.
type handlers struct {
	svc service.Service
}

// New builds the MCP server with company tools, resources and every
// extension-provided tool.
func New(svc service.Service, extCtx extension.Context) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		Name,
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	h := &handlers{svc: svc}
	registerResources(s)
	names := registerTools(s, h)

	tools, err := extension.Tools(names...)
	if err != nil {
		return nil, err
	}
	for _, t := range tools {
		handler := t.Handler
		s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handler(ctx, extCtx, req)
		})
	}
	return s, nil
}

// Serve runs the server until ctx is cancelled or the transport fails.
func Serve(ctx context.Context, s *server.MCPServer, opts Options) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	switch opts.Transport {
	case "", TransportStdio:
		slog.Info("chtools MCP server ready", "version", version.Short(), "transport", TransportStdio)
		stdio := server.NewStdioServer(s)
		err := stdio.Listen(ctx, os.Stdin, os.Stdout)
		if err == nil || errors.Is(err, context.Canceled) {
			slog.Info("server stopped")
			return nil
		}
		return err
	case TransportHTTP:
		return serveHTTP(ctx, s, opts)
	default:
		return fmt.Errorf("%w %q (valid: %s, %s)", ErrUnknownTransport, opts.Transport, TransportStdio, TransportHTTP)
	}
}

// Handler returns the HTTP routes: the streamable MCP endpoint at path and
// a liveness probe at /healthz. The endpoint is stateless; every request
// stands alone, as every tool call does.
func Handler(s *server.MCPServer, path string) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle(path, server.NewStreamableHTTPServer(s, server.WithStateLess(true)))
	return r
}

func serveHTTP(ctx context.Context, s *server.MCPServer, opts Options) error {
	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           Handler(s, opts.Path),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	slog.Info("chtools MCP server ready", "version", version.Short(), "transport", TransportHTTP, "addr", opts.Addr, "path", opts.Path)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		slog.Info("server stopped")
		return nil
	}
}
