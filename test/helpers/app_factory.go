package helpers

import (
	"time"

	"gorm.io/gorm"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/cache"
	"github.com/hoopsdata/basketball-analytics/internal/adapters/persistence"
	"github.com/hoopsdata/basketball-analytics/internal/adapters/security"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/application/setup"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// TestJWTSecret signs tokens issued by the test application
const TestJWTSecret = "test-secret-that-is-at-least-32-bytes-long"

// TestApp is the full application pipeline over a real database
type TestApp struct {
	DB        *gorm.DB
	Store     *SpyStore
	Cache     *cache.TTLCache
	Publisher *RecordingPublisher
	Clock     *shared.MockClock
	Tokens    *security.JWTService
	Hasher    *security.BcryptHasher
	Mediator  mediator.Mediator
}

// NewTestApp wires the configured mediator against db.
// The team list cache uses teamsTTL; Close must be called to stop its expiry loop.
func NewTestApp(db *gorm.DB, teamsTTL time.Duration) (*TestApp, error) {
	clock := shared.NewMockClock(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC))
	store := NewSpyStore(persistence.NewGormStore(db))
	teamCache := cache.NewTTLCache(teamsTTL, nil)
	publisher := NewRecordingPublisher()
	tokens := security.NewJWTService(TestJWTSecret, "basketball-analytics", "basketball-analytics-clients", time.Hour, clock)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	registry := setup.NewHandlerRegistry(store, teamCache, publisher, hasher, tokens, clock, teamsTTL)
	m, err := registry.CreateConfiguredMediator()
	if err != nil {
		teamCache.Close()
		return nil, err
	}

	return &TestApp{
		DB:        db,
		Store:     store,
		Cache:     teamCache,
		Publisher: publisher,
		Clock:     clock,
		Tokens:    tokens,
		Hasher:    hasher,
		Mediator:  m,
	}, nil
}

// Close stops the cache's expiry loop
func (a *TestApp) Close() {
	a.Cache.Close()
}
