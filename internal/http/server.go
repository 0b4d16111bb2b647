package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/lawra/internal/config"
	"github.com/davidbz/lawra/internal/http/middleware"
	"github.com/davidbz/lawra/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config config.ServerConfig
	srv    *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config: cfg.Server,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      middlewares(handler.Routes()),
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: cfg.WriteTimeout(),
		},
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
