package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/team/queries"
	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/test/helpers"
)

func TestGetAllTeamsHandler_CachesTheOrderedList(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	helpers.SeedTeam(t, store, "Lakers", "Los Angeles")
	helpers.SeedTeam(t, store, "Bulls", "Chicago")
	spy := helpers.NewSpyStore(store)
	cache := helpers.NewRecordingCache()
	handler := queries.NewGetAllTeamsHandler(spy, cache, time.Minute)
	ctx := context.Background()

	// Act
	first, err := handler.Handle(ctx, &queries.GetAllTeamsQuery{})
	require.NoError(t, err)
	second, err := handler.Handle(ctx, &queries.GetAllTeamsQuery{})
	require.NoError(t, err)

	// Assert
	teams := first.(*queries.GetAllTeamsResponse).Teams
	require.Len(t, teams, 2)
	assert.Equal(t, "Bulls", teams[0].Name)
	assert.Equal(t, "Lakers", teams[1].Name)
	assert.Equal(t, teams, second.(*queries.GetAllTeamsResponse).Teams)
	assert.Equal(t, 1, spy.TeamListReads())
	assert.True(t, cache.Has(common.AllTeamsCacheKey))
}

func TestGetAllTeamsHandler_CallersCannotMutateTheCachedList(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	helpers.SeedTeam(t, store, "Bulls", "Chicago")
	handler := queries.NewGetAllTeamsHandler(store, helpers.NewRecordingCache(), time.Minute)
	ctx := context.Background()

	// Act
	first, err := handler.Handle(ctx, &queries.GetAllTeamsQuery{})
	require.NoError(t, err)
	first.(*queries.GetAllTeamsResponse).Teams[0].Name = "Tampered"
	second, err := handler.Handle(ctx, &queries.GetAllTeamsQuery{})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "Bulls", second.(*queries.GetAllTeamsResponse).Teams[0].Name)
}

func TestGetAllTeamsHandler_EmptyLeague(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	handler := queries.NewGetAllTeamsHandler(store, helpers.NewRecordingCache(), time.Minute)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetAllTeamsQuery{})

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, resp.(*queries.GetAllTeamsResponse).Teams)
	assert.Empty(t, resp.(*queries.GetAllTeamsResponse).Teams)
}

func TestGetTeamByIDHandler(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	bulls := helpers.SeedTeam(t, store, "Bulls", "Chicago")
	handler := queries.NewGetTeamByIDHandler(store)
	ctx := context.Background()

	// Act
	resp, err := handler.Handle(ctx, &queries.GetTeamByIDQuery{ID: bulls.ID})
	_, missingErr := handler.Handle(ctx, &queries.GetTeamByIDQuery{ID: uuid.New()})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, queries.TeamDTO{ID: bulls.ID, Name: "Bulls", City: "Chicago"}, *resp.(*queries.TeamDTO))
	assert.ErrorIs(t, missingErr, shared.ErrNotFound)
}

func TestGetTeamStatsHandler(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	warriors := helpers.SeedTeam(t, store, "Warriors", "San Francisco")
	helpers.SeedPlayer(t, store, warriors.ID, "Stephen", "Curry", 188, 84, player.PointGuard)
	helpers.SeedPlayer(t, store, warriors.ID, "Klay", "Thompson", 198, 97, player.ShootingGuard)
	helpers.SeedPlayer(t, store, warriors.ID, "Jordan", "Poole", 193, 88, player.ShootingGuard)
	handler := queries.NewGetTeamStatsHandler(store)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetTeamStatsQuery{TeamID: warriors.ID})

	// Assert
	require.NoError(t, err)
	stats := resp.(*queries.TeamStatsDTO)
	assert.Equal(t, "Warriors", stats.TeamName)
	assert.Equal(t, 3, stats.PlayerCount)
	assert.Equal(t, 193.0, stats.AverageHeightCm)
	assert.Equal(t, 89.7, stats.AverageWeightKg)
	assert.Equal(t, map[string]int{"PointGuard": 1, "ShootingGuard": 2}, stats.PositionBreakdown)
}

func TestGetTeamStatsHandler_MissingTeam(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	handler := queries.NewGetTeamStatsHandler(store)

	// Act
	_, err := handler.Handle(context.Background(), &queries.GetTeamStatsQuery{TeamID: uuid.New()})

	// Assert
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
