package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	// Arrange
	path := writeConfig(t, `
database:
  type: sqlite
  path: ":memory:"
auth:
  secret: "`+testSecret+`"
`)

	// Act
	cfg, err := LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 10, cfg.HTTP.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RateLimit.Window)
	assert.True(t, cfg.HTTP.RateLimit.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TeamsTTL)
	assert.Equal(t, "player-created", cfg.Broker.Topic)
	assert.Equal(t, []time.Duration{5 * time.Second, 15 * time.Second, 30 * time.Second}, cfg.Broker.RetryIntervals)
	assert.Equal(t, 5, cfg.Broker.BreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.Broker.BreakerCooldown)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  type: sqlite
auth:
  secret: "`+testSecret+`"
http:
  address: ":9000"
`)
	t.Setenv("BA_HTTP_ADDRESS", ":9100")
	t.Setenv("BA_CACHE_TEAMS_TTL", "90s")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.HTTP.Address)
	assert.Equal(t, 90*time.Second, cfg.Cache.TeamsTTL)
}

func TestLoadConfig_RejectsShortSecretWithoutLeakingIt(t *testing.T) {
	path := writeConfig(t, `
database:
  type: sqlite
auth:
  secret: "hunter2"
`)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Auth.Secret")
	assert.NotContains(t, err.Error(), "hunter2")
}

func TestLoadConfig_BrokerRequiresAddressesWhenEnabled(t *testing.T) {
	path := writeConfig(t, `
database:
  type: sqlite
auth:
  secret: "`+testSecret+`"
broker:
  enabled: true
`)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broker.Brokers")
}

func TestLoadConfigOrDefault_FallsBackOnInvalidFile(t *testing.T) {
	path := writeConfig(t, "database: [not, a, map")

	cfg := LoadConfigOrDefault(path)

	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "info", cfg.Logging.Level)
}
