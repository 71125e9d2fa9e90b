// Package mcpserver exposes the personalization core as MCP tools: state
// inspection plus one tool per user-facing controller operation.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"personalization/internal/config"
	"personalization/internal/personalization"
	"personalization/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCP"

// Server serves the tool set over the configured transport.
type Server struct {
	app    *personalization.App
	config config.MCPConfig

	mcp *server.MCPServer

	mu      sync.Mutex
	running bool
}

// New builds the MCP server and registers every tool.
func New(app *personalization.App, cfg config.MCPConfig, version string) *Server {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 8091
	}
	if version == "" {
		version = "dev"
	}

	s := &Server{
		app:    app,
		config: cfg,
		mcp: server.NewMCPServer(
			"personalization",
			version,
			server.WithToolCapabilities(true),
		),
	}
	s.mcp.AddTools(s.tools()...)
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Address returns host:port for the HTTP transports.
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Serve blocks until ctx is cancelled or the transport fails.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("mcp server already running")
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	switch s.config.Transport {
	case config.MCPTransportStdio:
		logging.Info(subsystem, "Serving MCP over stdio")
		err := server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case config.MCPTransportSSE:
		sse := server.NewSSEServer(
			s.mcp,
			server.WithBaseURL("http://"+s.Address()),
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(30*time.Second),
		)
		return s.serveHTTP(ctx, "http://"+s.Address()+"/sse", sse.Start, sse.Shutdown)
	default:
		streamable := server.NewStreamableHTTPServer(s.mcp)
		return s.serveHTTP(ctx, "http://"+s.Address()+"/mcp", streamable.Start, streamable.Shutdown)
	}
}

func (s *Server) serveHTTP(ctx context.Context, endpoint string, start func(string) error, shutdown func(context.Context) error) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info(subsystem, "Serving MCP on %s", endpoint)
		errCh <- start(s.Address())
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
