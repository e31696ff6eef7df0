package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "basketball"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "basketball"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// HTTP defaults
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.HTTP.RateLimit.Requests == 0 {
		cfg.HTTP.RateLimit.Requests = 10
	}
	if cfg.HTTP.RateLimit.Window == 0 {
		cfg.HTTP.RateLimit.Window = 10 * time.Second
	}

	// Auth defaults
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "basketball-analytics"
	}
	if cfg.Auth.Audience == "" {
		cfg.Auth.Audience = "basketball-analytics-clients"
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = time.Hour
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}

	// Cache defaults
	if cfg.Cache.TeamsTTL == 0 {
		cfg.Cache.TeamsTTL = 5 * time.Minute
	}

	// Broker defaults
	if cfg.Broker.Topic == "" {
		cfg.Broker.Topic = "player-created"
	}
	if cfg.Broker.GroupID == "" {
		cfg.Broker.GroupID = "basketball-analytics"
	}
	if cfg.Broker.QueueSize == 0 {
		cfg.Broker.QueueSize = 1024
	}
	if cfg.Broker.Workers == 0 {
		cfg.Broker.Workers = 2
	}
	if cfg.Broker.BreakerFailures == 0 {
		cfg.Broker.BreakerFailures = 5
	}
	if cfg.Broker.BreakerCooldown == 0 {
		cfg.Broker.BreakerCooldown = 30 * time.Second
	}
	if len(cfg.Broker.RetryIntervals) == 0 {
		cfg.Broker.RetryIntervals = []time.Duration{5 * time.Second, 15 * time.Second, 30 * time.Second}
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	// Metrics defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Health defaults
	if cfg.Health.Interval == 0 {
		cfg.Health.Interval = 15 * time.Second
	}
	if cfg.Health.Timeout == 0 {
		cfg.Health.Timeout = 3 * time.Second
	}
}
