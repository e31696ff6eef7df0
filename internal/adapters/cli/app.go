package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/cache"
	"github.com/hoopsdata/basketball-analytics/internal/adapters/messaging"
	"github.com/hoopsdata/basketball-analytics/internal/adapters/metrics"
	"github.com/hoopsdata/basketball-analytics/internal/adapters/persistence"
	"github.com/hoopsdata/basketball-analytics/internal/adapters/security"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/application/setup"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/config"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/database"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/logger"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/pidfile"
)

// application holds the wired process dependencies shared by serve and consume
type application struct {
	cfg         *config.Config
	logger      *slog.Logger
	db          *gorm.DB
	cache       *cache.TTLCache
	queue       *messaging.OutboundQueue
	tokens      *security.JWTService
	mediator    mediator.Mediator
	httpMetrics *metrics.HTTPMetricsCollector

	// closers run in reverse order on shutdown
	closers []func() error
}

// loadRuntime loads configuration, builds the logger and claims the PID file
func loadRuntime(service string) (*config.Config, *slog.Logger, []func() error, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log, closeLog, err := logger.New(cfg.Logging, service)
	if err != nil {
		return nil, nil, nil, err
	}
	slog.SetDefault(log)
	closers := []func() error{closeLog}

	if pidFile != "" {
		pf := pidfile.New(pidFile)
		if err := pf.Acquire(); err != nil {
			_ = closeLog()
			return nil, nil, nil, err
		}
		closers = append(closers, pf.Release)
	}

	return cfg, log, closers, nil
}

// buildApp wires persistence, cache, messaging and the mediator pipeline
func buildApp(service string) (*application, error) {
	cfg, log, closers, err := loadRuntime(service)
	if err != nil {
		return nil, err
	}
	app := &application{cfg: cfg, logger: log, closers: closers}

	// 1. Metrics registry (optional)
	var instrumentation []mediator.Middleware
	var cacheRecorder cache.LookupRecorder
	var deliveryObserver messaging.DeliveryObserver
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		commandMetrics := metrics.NewCommandMetricsCollector()
		cacheMetrics := metrics.NewCacheMetricsCollector("teams")
		deliveryMetrics := metrics.NewDeliveryMetricsCollector()
		app.httpMetrics = metrics.NewHTTPMetricsCollector()

		for _, register := range []func() error{
			commandMetrics.Register, cacheMetrics.Register, deliveryMetrics.Register, app.httpMetrics.Register,
		} {
			if err := register(); err != nil {
				return nil, app.fail(fmt.Errorf("failed to register metrics: %w", err))
			}
		}

		instrumentation = append(instrumentation, metrics.PrometheusMiddleware(commandMetrics))
		cacheRecorder = cacheMetrics
		deliveryObserver = deliveryMetrics
		log.Info("Metrics enabled", slog.String("path", cfg.Metrics.Path))
	}

	// 2. Database
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, app.fail(fmt.Errorf("failed to connect to database: %w", err))
	}
	app.db = db
	app.closers = append(app.closers, func() error { return database.Close(db) })
	log.Info("Database connected", slog.String("type", cfg.Database.Type))

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return nil, app.fail(fmt.Errorf("failed to migrate database: %w", err))
		}
		log.Info("Database schema migrated")
	}

	// 3. Cache
	app.cache = cache.NewTTLCache(cfg.Cache.TeamsTTL, cacheRecorder)
	app.closers = append(app.closers, func() error { app.cache.Close(); return nil })

	// 4. Outbound events
	var sink messaging.Sink
	if cfg.Broker.Enabled {
		kafkaSink := messaging.NewKafkaSink(cfg.Broker.Brokers, cfg.Broker.Topic)
		app.closers = append(app.closers, kafkaSink.Close)
		sink = messaging.NewBreakerSink(kafkaSink, cfg.Broker.BreakerFailures, cfg.Broker.BreakerCooldown, nil)
		log.Info("Event broker enabled", slog.Any("brokers", cfg.Broker.Brokers), slog.String("topic", cfg.Broker.Topic))
	} else {
		sink = messaging.NewLogSink(log)
		log.Info("Event broker disabled, events are logged only")
	}
	app.queue = messaging.NewOutboundQueue(sink, retryPolicy(cfg.Broker), cfg.Broker.QueueSize, log, deliveryObserver)

	// 5. Security
	app.tokens = security.NewJWTService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenTTL, nil)
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	// 6. Mediator with every handler and behavior
	registry := setup.NewHandlerRegistry(
		persistence.NewGormStore(db),
		app.cache,
		app.queue,
		hasher,
		app.tokens,
		nil,
		cfg.Cache.TeamsTTL,
	)
	app.mediator, err = registry.CreateConfiguredMediator(instrumentation...)
	if err != nil {
		return nil, app.fail(fmt.Errorf("failed to configure mediator: %w", err))
	}

	return app, nil
}

func retryPolicy(cfg config.BrokerConfig) messaging.RetryPolicy {
	if len(cfg.RetryIntervals) == 0 {
		return messaging.DefaultRetryPolicy()
	}
	return messaging.RetryPolicy{Intervals: cfg.RetryIntervals}
}

// startQueue launches delivery workers and registers a draining close.
// Delivery runs on its own context, cancelled only once the queue has drained.
func (a *application) startQueue() {
	ctx, cancel := context.WithCancel(context.Background())
	a.queue.Start(ctx, a.cfg.Broker.Workers)
	// Appended last so it runs first: drain before the sink closes
	a.closers = append(a.closers, func() error {
		defer cancel()
		return a.queue.Close()
	})
}

// fail releases whatever was wired so far and returns err
func (a *application) fail(err error) error {
	if closeErr := a.Close(); closeErr != nil {
		return multierror.Append(err, closeErr)
	}
	return err
}

// Close runs every closer in reverse order and aggregates their errors
func (a *application) Close() error {
	var result *multierror.Error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			result = multierror.Append(result, err)
		}
	}
	a.closers = nil
	return result.ErrorOrNil()
}
