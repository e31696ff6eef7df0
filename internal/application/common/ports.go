package common

import (
	"context"
	"time"

	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
	"github.com/hoopsdata/basketball-analytics/internal/domain/team"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// UnitOfWork groups the repositories used by one request.
// Writes staged through the repositories are applied atomically by Commit.
type UnitOfWork interface {
	Teams() team.Repository
	Players() player.Repository
	Users() user.Repository

	// Commit applies every staged write in a single transaction and returns
	// the number of affected records. Nothing is applied when it fails.
	Commit(ctx context.Context) (int, error)
}

// Store opens a fresh unit of work per request.
type Store interface {
	Begin() UnitOfWork
}

// Cache is a process-local key/value cache with absolute expiry.
type Cache interface {
	TryGet(key string) (any, bool)
	// Set stores value for ttl. A zero ttl uses the cache default.
	Set(key string, value any, ttl time.Duration)
	Remove(key string)
}

// Event is a domain notification handed to the outbound queue.
type Event interface {
	EventName() string
	// EventKey groups related events onto the same partition.
	EventKey() string
}

// EventPublisher accepts events for asynchronous delivery.
// Publish returns once the event is queued, not once it is delivered.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type TokenIssuer interface {
	Issue(u *user.User) (string, error)
}

// HealthCheck probes one dependency of the process.
type HealthCheck interface {
	Name() string
	Check(ctx context.Context) error
}
