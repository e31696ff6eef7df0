package config

import "time"

// CacheConfig holds in-process cache settings
type CacheConfig struct {
	// Absolute lifetime of the cached team list
	TeamsTTL time.Duration `mapstructure:"teams_ttl" validate:"required"`
}
