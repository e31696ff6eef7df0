package config

import "time"

// HealthConfig holds the gRPC health service configuration
type HealthConfig struct {
	// Listen address for grpc.health.v1; empty disables the service
	GRPCAddress string `mapstructure:"grpc_address"`

	// How often dependencies are probed to refresh the serving status
	Interval time.Duration `mapstructure:"interval" validate:"required"`

	// Per-check timeout
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`
}
