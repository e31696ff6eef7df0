package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/persistence"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/database"
)

// NewTestDB creates a new migrated SQLite in-memory database for testing
func NewTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Cleanup after test
	if t != nil {
		t.Cleanup(func() {
			database.Close(db)
		})
	}

	return db
}

// NewTestStore returns a GORM-backed store over a fresh in-memory database
func NewTestStore(t *testing.T) (*persistence.GormStore, *gorm.DB) {
	db := NewTestDB(t)
	return persistence.NewGormStore(db), db
}
