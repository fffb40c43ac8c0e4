// Package server manages the lifecycle of the HTTP transport: startup,
// signal-driven graceful shutdown, and timeout wiring from configuration.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fieldpress/fieldpress/internal/config"
	"github.com/fieldpress/fieldpress/internal/logger"
)

// Server is the lifecycle contract of the transport server. RunServer blocks
// until shutdown is requested; Shutdown stops the server gracefully.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps the given HTTP handler in a managed server listening on the
// configured address.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer launches the HTTP listener and blocks until SIGINT, SIGTERM, or
// SIGQUIT triggers a graceful shutdown.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown gracefully stops the HTTP server.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}
