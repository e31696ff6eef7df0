package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/config"
)

func TestNewTestConnection_MigratesAllTables(t *testing.T) {
	// Arrange & Act
	db, err := NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	// Assert
	for _, table := range []string{"teams", "players", "users"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestNewConnection_RejectsUnknownType(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Type: "mysql"})

	assert.ErrorContains(t, err, "unsupported database type")
}

func TestPingChecker(t *testing.T) {
	db, err := NewTestConnection()
	require.NoError(t, err)
	checker := NewPingChecker(db)

	assert.Equal(t, "database", checker.Name())
	assert.NoError(t, checker.Check(context.Background()))

	require.NoError(t, Close(db))
	assert.Error(t, checker.Check(context.Background()))
}
