package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/config"
)

// shutdownGrace bounds Shutdown when neither the configuration nor the
// caller's context sets a deadline.
const shutdownGrace = 10 * time.Second

// Server runs the service's HTTP listener with graceful shutdown.
type Server struct {
	inner  *http.Server
	logger *slog.Logger
	grace  time.Duration
}

// NewServer assembles the listener from configuration. A nil logger is
// replaced with a discarding one.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	grace := cfg.ShutdownTimeout
	if grace <= 0 {
		grace = shutdownGrace
	}
	inner := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return &Server{inner: inner, logger: logger, grace: grace}
}

// Start listens and serves until Shutdown is called, then returns nil.
func (s *Server) Start() error {
	s.logger.Info("http server listening", slog.String("addr", s.inner.Addr))

	err := s.inner.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http server: %w", err)
}

// Shutdown drains in-flight requests before closing. Without a caller
// deadline it waits at most the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		bounded, cancel := context.WithTimeout(ctx, s.grace)
		defer cancel()
		ctx = bounded
	}

	s.logger.Info("draining http server")
	return s.inner.Shutdown(ctx)
}

// Addr reports the configured listen address.
func (s *Server) Addr() string {
	return s.inner.Addr
}
