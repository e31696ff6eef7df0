package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	grpcadapter "github.com/hoopsdata/basketball-analytics/internal/adapters/grpc"
	"github.com/hoopsdata/basketball-analytics/internal/adapters/httpapi"
	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/database"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		Long: `Start the REST API, the outbound event queue and, when health.grpc_address
is set, the gRPC health service. Stops gracefully on SIGINT or SIGTERM.

Example:
  basketball-api serve --config ./configs/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}

	return cmd
}

func runServe(ctx context.Context) (err error) {
	app, err := buildApp("basketball-api")
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr).ErrorOrNil()
		}
	}()

	// Delivery outlives the request context so queued events drain on shutdown
	app.startQueue()

	checks := []common.HealthCheck{database.NewPingChecker(app.db)}
	opts := []httpapi.Option{httpapi.WithHealthChecks(checks...)}
	if app.httpMetrics != nil {
		opts = append(opts, httpapi.WithMetrics(app.httpMetrics, app.cfg.Metrics.Path))
	}
	server := httpapi.NewServer(app.mediator, app.tokens, app.cfg.HTTP, app.logger, opts...)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result *multierror.Error
	)
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(runCtx); err != nil {
				mu.Lock()
				result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
			}
			// One component stopping stops the others
			cancel()
		}()
	}

	run("http", server.Run)
	if addr := app.cfg.Health.GRPCAddress; addr != "" {
		health := grpcadapter.NewHealthServer(checks, app.cfg.Health.Interval, app.cfg.Health.Timeout, app.logger)
		run("grpc health", func(ctx context.Context) error { return health.Run(ctx, addr) })
	}

	app.logger.Info("Basketball Analytics API started", slog.String("address", app.cfg.HTTP.Address))
	wg.Wait()
	app.logger.Info("Basketball Analytics API stopped")

	return result.ErrorOrNil()
}
