package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
	"github.com/hoopsdata/basketball-analytics/internal/domain/team"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// FixtureTime is the creation time stamped on seeded records
var FixtureTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// SeedTeam persists a team directly through the store, bypassing the pipeline
func SeedTeam(t *testing.T, store common.Store, name, city string) *team.Team {
	t.Helper()
	tm := team.NewTeam(name, city, FixtureTime)
	uow := store.Begin()
	uow.Teams().Add(tm)
	_, err := uow.Commit(context.Background())
	require.NoError(t, err)
	return tm
}

// SeedPlayer persists a player on teamID
func SeedPlayer(t *testing.T, store common.Store, teamID uuid.UUID, first, last string, heightCm, weightKg int, position player.Position) *player.Player {
	t.Helper()
	p := player.NewPlayer(first, last, heightCm, weightKg, position, "23", teamID, FixtureTime)
	uow := store.Begin()
	uow.Players().Add(p)
	_, err := uow.Commit(context.Background())
	require.NoError(t, err)
	return p
}

// SeedUser persists an account whose password hash is supplied by the caller
func SeedUser(t *testing.T, store common.Store, username, passwordHash string, role user.Role) *user.User {
	t.Helper()
	u := user.NewUser(username, passwordHash, role, FixtureTime)
	uow := store.Begin()
	uow.Users().Add(u)
	_, err := uow.Commit(context.Background())
	require.NoError(t, err)
	return u
}
