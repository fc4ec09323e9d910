package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"log/slog"

	"github.com/ecomdash/analytics-api/internal/dependency"
)

// Config is the configuration for the http server.
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// HealthInfo is the deployment info the liveness endpoints expose.
type HealthInfo struct {
	Environment  string
	DatabaseHost string
}

// Server is the http server.
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server.
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start begins serving in the background. Serve errors other than a clean
// shutdown are logged and close Done.
func (s *Server) Start(ctx context.Context, rep dependency.Repository, info HealthInfo) error {
	s.hs = &http.Server{
		Addr:              net.JoinHostPort(s.c.Address, s.c.Port),
		Handler:           s.router(rep, info),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "http server listening", "addr", s.hs.Addr)
		if err := s.hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Default().ErrorContext(ctx, "http server exited", "err", err)
		}
	}()

	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
