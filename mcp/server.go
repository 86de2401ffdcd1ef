// Package mcp serves the searchadmin SDK as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/searchplatform/searchadmin/client"
	"github.com/searchplatform/searchadmin/internal/config"
	"github.com/searchplatform/searchadmin/internal/logger"
	"github.com/searchplatform/searchadmin/mcp/internal/handlers"
)

const (
	ServerName = "searchadmin-mcp-server"

	endpointPath      = "/mcp"
	heartbeatInterval = 30 * time.Second
	readTimeout       = 5 * time.Second
	idleTimeout       = 120 * time.Second
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server with every searchadmin tool registered.
func NewServer(c *client.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		ServerName,
		client.Version,
		server.WithToolCapabilities(true),
		// Advertise empty resources and prompts so hosts don't get
		// -32601 for resources/list and prompts/list.
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	)

	for _, h := range []struct {
		name string
		r    toolRegisterer
	}{
		{"source", handlers.NewSourceHandler(c)},
		{"object", handlers.NewObjectHandler(c)},
		{"cluster", handlers.NewClusterHandler(c)},
	} {
		if err := h.r.RegisterTools(s); err != nil {
			return nil, pkgerrors.Wrapf(err, "register %s tools", h.name)
		}
	}
	return s, nil
}

// newHTTPHandler routes the streamable MCP endpoint and /metrics.
func newHTTPHandler(s *server.MCPServer) (http.Handler, *server.StreamableHTTPServer) {
	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath(endpointPath),
		server.WithHeartbeatInterval(heartbeatInterval),
	)
	r := mux.NewRouter()
	r.Handle(endpointPath, streamSrv)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r, streamSrv
}

// RunMCPServer loads configuration, then serves over stdio or streamable
// HTTP until interrupted.
func RunMCPServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	// stdout belongs to the stdio transport.
	log.Logger = logger.NewWithWriter(os.Stderr, ServerName, level).With().Caller().Logger()

	c, err := cfg.NewClient()
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing client")
		}
	}()
	log.Info().
		Str("backend_url", c.BackendURL()).
		Str("cluster_url", c.ClusterURL()).
		Msg("Client created")

	s, err := NewServer(c)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to build MCP server")
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("Starting searchadmin MCP server (stdio transport)")
		return server.ServeStdio(s)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serveHTTP(ctx, cfg, s)
}

func serveHTTP(ctx context.Context, cfg *config.Config, s *server.MCPServer) error {
	handler, streamSrv := newHTTPHandler(s)
	srv := &http.Server{
		Addr:        cfg.MCPAddr,
		Handler:     handler,
		ReadTimeout: readTimeout,
		// No write deadline: SSE streams stay open.
		WriteTimeout: 0,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.MCPAddr).Str("endpoint", endpointPath).Msg("Starting searchadmin MCP server (Streamable HTTP)")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during HTTP server shutdown")
		errs = append(errs, err)
	}
	if err := streamSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during MCP server shutdown")
		errs = append(errs, err)
	}
	log.Info().Msg("MCP server shutdown complete")
	return errors.Join(errs...)
}

// shouldUseStdio picks the transport. SEARCHADMIN_MCP_STDIO or MCP_STDIO
// force stdio, SEARCHADMIN_MCP_HTTP or MCP_HTTP force HTTP; otherwise stdio
// is used when stdin is not a terminal.
func shouldUseStdio() bool {
	if envTrue("SEARCHADMIN_MCP_STDIO") || envTrue("MCP_STDIO") {
		return true
	}
	if envTrue("SEARCHADMIN_MCP_HTTP") || envTrue("MCP_HTTP") {
		return false
	}
	if fi, err := os.Stdin.Stat(); err == nil {
		return fi.Mode()&os.ModeCharDevice == 0
	}
	return false
}

func envTrue(key string) bool { return os.Getenv(key) == "true" }
