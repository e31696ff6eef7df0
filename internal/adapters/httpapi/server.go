package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/metrics"
	"github.com/hoopsdata/basketball-analytics/internal/application/auth"
	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/config"
)

// TokenVerifier turns a bearer token into the calling principal
type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// Server exposes the mediator over REST
type Server struct {
	mediator    mediator.Mediator
	verifier    TokenVerifier
	checks      []common.HealthCheck
	cfg         config.HTTPConfig
	metricsPath string
	httpMetrics *metrics.HTTPMetricsCollector
	logger      *slog.Logger
	limiter     *clientLimiter
}

// Option customises a Server
type Option func(*Server)

// WithMetrics records request metrics and mounts the Prometheus handler at path
func WithMetrics(collector *metrics.HTTPMetricsCollector, path string) Option {
	return func(s *Server) {
		s.httpMetrics = collector
		s.metricsPath = path
	}
}

// WithHealthChecks adds dependency probes to GET /health
func WithHealthChecks(checks ...common.HealthCheck) Option {
	return func(s *Server) {
		s.checks = append(s.checks, checks...)
	}
}

// NewServer creates the REST server
func NewServer(m mediator.Mediator, verifier TokenVerifier, cfg config.HTTPConfig, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		mediator: m,
		verifier: verifier,
		cfg:      cfg,
		logger:   logger,
	}
	if cfg.RateLimit.Enabled {
		s.limiter = newClientLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the fully wrapped router
func (s *Server) Handler() http.Handler {
	return s.recoverer(s.requestLogging(s.rateLimit(s.routes())))
}

// Run serves until ctx is cancelled and then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", slog.String("address", s.cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}
