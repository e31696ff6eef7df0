package queries_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/application/player/queries"
	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/test/helpers"
)

func TestGetPlayersByTeamHandler(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	warriors := helpers.SeedTeam(t, store, "Warriors", "San Francisco")
	hornets := helpers.SeedTeam(t, store, "Hornets", "Charlotte")
	helpers.SeedPlayer(t, store, warriors.ID, "Klay", "Thompson", 198, 97, player.ShootingGuard)
	curry := helpers.SeedPlayer(t, store, warriors.ID, "Stephen", "Curry", 188, 84, player.PointGuard)
	handler := queries.NewGetPlayersByTeamHandler(store)
	ctx := context.Background()

	// Act
	resp, err := handler.Handle(ctx, &queries.GetPlayersByTeamQuery{TeamID: warriors.ID})
	require.NoError(t, err)
	empty, err := handler.Handle(ctx, &queries.GetPlayersByTeamQuery{TeamID: hornets.ID})
	require.NoError(t, err)

	// Assert
	players := resp.(*queries.GetPlayersByTeamResponse).Players
	require.Len(t, players, 2)
	assert.Equal(t, queries.PlayerDTO{
		ID:           curry.ID,
		FullName:     "Stephen Curry",
		HeightCm:     188,
		WeightKg:     84,
		Position:     "PointGuard",
		JerseyNumber: "23",
		TeamID:       warriors.ID,
		TeamName:     "Warriors",
	}, players[0])
	assert.Equal(t, "Klay Thompson", players[1].FullName)
	assert.Empty(t, empty.(*queries.GetPlayersByTeamResponse).Players)
}

func TestGetAllPlayersHandler_Pages(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	warriors := helpers.SeedTeam(t, store, "Warriors", "San Francisco")
	for _, last := range []string{"Curry", "Green", "Looney", "Poole", "Thompson"} {
		helpers.SeedPlayer(t, store, warriors.ID, "Player", last, 200, 100, player.Center)
	}
	handler := queries.NewGetAllPlayersHandler(store)

	tests := []struct {
		name      string
		page      int
		size      int
		wantNames []string
	}{
		{"first page", 1, 2, []string{"Player Curry", "Player Green"}},
		{"last partial page", 3, 2, []string{"Player Thompson"}},
		{"beyond the end", 4, 2, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			resp, err := handler.Handle(context.Background(), &queries.GetAllPlayersQuery{Page: tt.page, PageSize: tt.size})

			// Assert
			require.NoError(t, err)
			page := resp.(*queries.PagedResult[queries.PlayerDTO])
			assert.Equal(t, int64(5), page.TotalCount)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, tt.page, page.Page)

			names := make([]string, 0, len(page.Items))
			for _, p := range page.Items {
				names = append(names, p.FullName)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestGetAllPlayersHandler_EmptyLeagueHasZeroPages(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	handler := queries.NewGetAllPlayersHandler(store)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetAllPlayersQuery{Page: 1, PageSize: queries.DefaultPageSize})

	// Assert
	require.NoError(t, err)
	page := resp.(*queries.PagedResult[queries.PlayerDTO])
	assert.Zero(t, page.TotalCount)
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestGetAllPlayersHandler_HugePageReadsPastTheEnd(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	bulls := helpers.SeedTeam(t, store, "Bulls", "Chicago")
	helpers.SeedPlayer(t, store, bulls.ID, "Michael", "Jordan", 198, 98, player.ShootingGuard)
	handler := queries.NewGetAllPlayersHandler(store)
	hugePage := math.MaxInt/queries.MaxPageSize + 2

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetAllPlayersQuery{Page: hugePage, PageSize: queries.MaxPageSize})

	// Assert
	require.NoError(t, err)
	page := resp.(*queries.PagedResult[queries.PlayerDTO])
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(1), page.TotalCount)
}

func TestGetAllPlayersQuery_PageIsBounded(t *testing.T) {
	// Arrange
	registry := validation.NewRegistry()

	// Act
	tooFar := registry.Validate(context.Background(), &queries.GetAllPlayersQuery{Page: queries.MaxPage + 1, PageSize: 10})
	lastAllowed := registry.Validate(context.Background(), &queries.GetAllPlayersQuery{Page: queries.MaxPage, PageSize: 10})

	// Assert
	var verr *shared.ValidationError
	require.ErrorAs(t, tooFar, &verr)
	assert.Equal(t, []string{"Page"}, verr.Fields())
	assert.NoError(t, lastAllowed)
}
