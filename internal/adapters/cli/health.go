package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcadapter "github.com/hoopsdata/basketball-analytics/internal/adapters/grpc"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/config"
)

// NewHealthCommand creates the health command
func NewHealthCommand() *cobra.Command {
	var address string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check API health status",
		Long: `Query the gRPC health service of a running API.

Defaults to health.grpc_address from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if address == "" {
				address = config.LoadConfigOrDefault(configPath).Health.GRPCAddress
			}
			if address == "" {
				return fmt.Errorf("no health address: pass --address or set health.grpc_address")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			status, err := checkHealth(ctx, address)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			if status != healthpb.HealthCheckResponse_SERVING {
				return fmt.Errorf("API is not serving (status %s)", status)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ API is healthy")
			fmt.Fprintf(cmd.OutOrStdout(), "  Address: %s\n", address)
			fmt.Fprintf(cmd.OutOrStdout(), "  Status:  %s\n", status)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "gRPC health address (host:port)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")

	return cmd
}

func checkHealth(ctx context.Context, address string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: grpcadapter.ServiceName})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.Status, nil
}
