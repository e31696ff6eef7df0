package config

import "time"

// AuthConfig holds bearer token settings
type AuthConfig struct {
	// HMAC signing secret. Must be at least 32 bytes.
	Secret   string        `mapstructure:"secret" validate:"required,min=32"`
	Issuer   string        `mapstructure:"issuer" validate:"required"`
	Audience string        `mapstructure:"audience" validate:"required"`
	TokenTTL time.Duration `mapstructure:"token_ttl" validate:"required"`

	// bcrypt cost factor for stored passwords
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}
