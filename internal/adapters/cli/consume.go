package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/messaging"
	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/events"
)

// NewConsumeCommand creates the consume command
func NewConsumeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consume",
		Short: "Process PlayerCreated events",
		Long: `Read PlayerCreated events from the configured topic and run the
welcome email, team stats and coach notification steps for each one.

Failed events are retried on the broker retry intervals. Events that cannot
be decoded are skipped.

Example:
  BA_BROKER_ENABLED=true BA_BROKER_BROKERS=localhost:9092 basketball-api consume`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, log, closers, err := loadRuntime("basketball-consumer")
			if err != nil {
				return err
			}
			app := &application{closers: closers}
			defer func() {
				if closeErr := app.Close(); closeErr != nil {
					err = multierror.Append(err, closeErr).ErrorOrNil()
				}
			}()

			if !cfg.Broker.Enabled {
				return fmt.Errorf("broker is disabled; set broker.enabled and broker.brokers")
			}

			processor := events.NewPlayerCreatedProcessor(messaging.Poison)
			consumer := messaging.NewKafkaConsumer(
				cfg.Broker.Brokers,
				cfg.Broker.Topic,
				cfg.Broker.GroupID,
				processor.Process,
				retryPolicy(cfg.Broker),
				log,
			)
			app.closers = append(app.closers, consumer.Close)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx = common.WithLogger(ctx, log)

			log.Info("Consuming events",
				slog.String("topic", cfg.Broker.Topic),
				slog.String("group_id", cfg.Broker.GroupID))
			return consumer.Run(ctx)
		},
	}

	return cmd
}
