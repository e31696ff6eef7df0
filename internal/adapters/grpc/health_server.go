package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
)

// ServiceName is the named service reported alongside the overall ("") status
const ServiceName = "basketball.api.v1.BasketballAnalytics"

// HealthServer publishes dependency health over grpc.health.v1
type HealthServer struct {
	health   *health.Server
	checks   []common.HealthCheck
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// NewHealthServer creates a health service that starts out NOT_SERVING until the first probe
func NewHealthServer(checks []common.HealthCheck, interval, timeout time.Duration, logger *slog.Logger) *HealthServer {
	if logger == nil {
		logger = slog.Default()
	}
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		health:   h,
		checks:   checks,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Register attaches the health service to a gRPC server
func (s *HealthServer) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, s.health)
}

// Probe runs every check once and updates the serving status
func (s *HealthServer) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	for _, check := range s.checks {
		checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := check.Check(checkCtx)
		cancel()
		if err != nil {
			s.logger.Warn("Health check failed",
				slog.String("check", check.Name()),
				slog.Any("error", err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Run listens on address, probing on every interval, until ctx is cancelled
func (s *HealthServer) Run(ctx context.Context, address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run over an existing listener
func (s *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	grpcServer := grpc.NewServer()
	s.Register(grpcServer)

	s.Probe(ctx)
	go s.probeLoop(ctx)

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("gRPC health service listening", slog.String("address", listener.Addr().String()))
		if err := grpcServer.Serve(listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.health.Shutdown()
		grpcServer.GracefulStop()
		return nil
	}
}

func (s *HealthServer) probeLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Probe(ctx)
		}
	}
}
