package cli

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Basketball Analytics configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (BA_* prefix, plus DATABASE_URL and JWT_SECRET)
2. Config file (config.yaml)
3. Default values

Examples:
  basketball-api config show`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the effective configuration. Secrets are never printed.

Example:
  basketball-api config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			printConfig(out, cfg)
			return nil
		},
	}

	return cmd
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Basketball Analytics Configuration")
	fmt.Fprintln(out, "==================================")

	fmt.Fprintln(out, "\nDatabase:")
	fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
	switch {
	case cfg.Database.URL != "":
		fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
	case cfg.Database.Type == "sqlite":
		fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
	default:
		fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
		fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
		fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
		fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
	}
	fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
	fmt.Fprintf(out, "  Auto Migrate:     %t\n", cfg.Database.AutoMigrate)

	fmt.Fprintln(out, "\nHTTP:")
	fmt.Fprintf(out, "  Address:          %s\n", cfg.HTTP.Address)
	if cfg.HTTP.RateLimit.Enabled {
		fmt.Fprintf(out, "  Rate Limit:       %d req per %s per client\n", cfg.HTTP.RateLimit.Requests, cfg.HTTP.RateLimit.Window)
	} else {
		fmt.Fprintf(out, "  Rate Limit:       disabled\n")
	}

	fmt.Fprintln(out, "\nAuth:")
	fmt.Fprintf(out, "  Issuer:           %s\n", cfg.Auth.Issuer)
	fmt.Fprintf(out, "  Audience:         %s\n", cfg.Auth.Audience)
	fmt.Fprintf(out, "  Token TTL:        %s\n", cfg.Auth.TokenTTL)
	fmt.Fprintf(out, "  Secret:           %s\n", maskSecret(cfg.Auth.Secret))

	fmt.Fprintln(out, "\nCache:")
	fmt.Fprintf(out, "  Teams TTL:        %s\n", cfg.Cache.TeamsTTL)

	fmt.Fprintln(out, "\nBroker:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Broker.Enabled)
	fmt.Fprintf(out, "  Brokers:          %s\n", strings.Join(cfg.Broker.Brokers, ","))
	fmt.Fprintf(out, "  Topic:            %s\n", cfg.Broker.Topic)
	fmt.Fprintf(out, "  Retry Intervals:  %v\n", cfg.Broker.RetryIntervals)
	fmt.Fprintf(out, "  Breaker:          %d failures, %s cooldown\n", cfg.Broker.BreakerFailures, cfg.Broker.BreakerCooldown)

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)
	if cfg.Logging.FilePath != "" {
		fmt.Fprintf(out, "  File:             %s\n", cfg.Logging.FilePath)
	}

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
	fmt.Fprintf(out, "  Path:             %s\n", cfg.Metrics.Path)

	fmt.Fprintln(out, "\nHealth:")
	fmt.Fprintf(out, "  gRPC Address:     %s\n", cfg.Health.GRPCAddress)
	fmt.Fprintf(out, "  Interval:         %s\n", cfg.Health.Interval)
}

// maskPassword masks passwords in connection strings for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Redacted()
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	return fmt.Sprintf("(set, %d bytes)", len(secret))
}
