package config

import "time"

// BrokerConfig holds outbound event delivery configuration
type BrokerConfig struct {
	// Deliver events to Kafka. When disabled, events are logged and dropped.
	Enabled bool `mapstructure:"enabled"`

	Brokers []string `mapstructure:"brokers" validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `mapstructure:"topic" validate:"required"`
	GroupID string   `mapstructure:"group_id" validate:"required"`

	// Capacity of the in-process outbound queue
	QueueSize int `mapstructure:"queue_size" validate:"min=1"`

	// Number of delivery workers draining the queue
	Workers int `mapstructure:"workers" validate:"min=1"`

	// Delays between delivery attempts; one retry per entry
	RetryIntervals []time.Duration `mapstructure:"retry_intervals"`

	// Consecutive delivery failures that open the circuit breaker
	BreakerFailures int `mapstructure:"breaker_failures" validate:"min=1"`

	// How long an open breaker rejects deliveries before probing again
	BreakerCooldown time.Duration `mapstructure:"breaker_cooldown" validate:"min=0"`
}
