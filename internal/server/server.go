// Package server runs the HTTP transport with signal-driven graceful
// shutdown.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/account-registry/internal/config"
	"github.com/MKhiriev/account-registry/internal/logger"
)

type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *Server {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      handler,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// RunServer serves until SIGTERM/SIGINT/SIGQUIT, then shuts down
// gracefully, waiting for in-flight requests to finish.
func (s *Server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()

		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Err(err).Msg("HTTP server shutdown error")
		}

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Err(err).Msg("HTTP server ListenAndServe error")
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shutdown gracefully")
}
