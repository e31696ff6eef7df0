package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/application/events"
	"github.com/hoopsdata/basketball-analytics/internal/application/player/commands"
	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/test/helpers"
)

var signedAt = time.Date(2025, 2, 10, 18, 30, 0, 0, time.UTC)

func curry(teamID uuid.UUID) *commands.CreatePlayerCommand {
	return &commands.CreatePlayerCommand{
		FirstName:    "Stephen",
		LastName:     "Curry",
		HeightCm:     188,
		WeightKg:     84,
		Position:     1,
		JerseyNumber: "30",
		TeamID:       teamID,
	}
}

func TestCreatePlayerHandler_PublishesAfterCommit(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	warriors := helpers.SeedTeam(t, store, "Warriors", "San Francisco")
	publisher := helpers.NewRecordingPublisher()
	handler := commands.NewCreatePlayerHandler(store, publisher, shared.NewMockClock(signedAt))

	// Act
	resp, err := handler.Handle(context.Background(), curry(warriors.ID))

	// Assert
	require.NoError(t, err)
	playerID := resp.(*commands.CreatePlayerResponse).PlayerID

	published := publisher.Events()
	require.Len(t, published, 1)
	event := published[0].(*events.PlayerCreatedEvent)
	assert.Equal(t, playerID, event.PlayerID)
	assert.Equal(t, warriors.ID, event.TeamID)
	assert.Equal(t, "Stephen", event.FirstName)
	assert.True(t, event.CreatedAt.Equal(signedAt))

	roster, err := store.Begin().Players().FindByTeam(context.Background(), warriors.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "30", roster[0].JerseyNumber)
}

func TestCreatePlayerHandler_PublishFailureDoesNotFailTheCommand(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	warriors := helpers.SeedTeam(t, store, "Warriors", "San Francisco")
	publisher := helpers.NewRecordingPublisher()
	publisher.FailWith(errors.New("broker unavailable"))
	handler := commands.NewCreatePlayerHandler(store, publisher, nil)

	// Act
	resp, err := handler.Handle(context.Background(), curry(warriors.ID))

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.(*commands.CreatePlayerResponse).PlayerID)
	count, err := store.Begin().Players().CountByTeam(context.Background(), warriors.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRegisterValidation_ReportsEveryFailure(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	registry := validation.NewRegistry()
	require.NoError(t, commands.RegisterValidation(registry, store))
	cmd := curry(uuid.New())
	cmd.FirstName = ""
	cmd.HeightCm = 50
	cmd.Position = 9

	// Act
	err := registry.Validate(context.Background(), cmd)

	// Assert
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"FirstName", "HeightCm", "Position", "TeamID"}, verr.Fields())
	assert.Equal(t, "The specified team does not exist.", verr.Failures[len(verr.Failures)-1].Message)
}

func TestRegisterValidation_AcceptsAValidPlayer(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	warriors := helpers.SeedTeam(t, store, "Warriors", "San Francisco")
	registry := validation.NewRegistry()
	require.NoError(t, commands.RegisterValidation(registry, store))

	// Act
	err := registry.Validate(context.Background(), curry(warriors.ID))

	// Assert
	assert.NoError(t, err)
}

func TestRegisterValidation_MissingTeamIDIsReportedOnce(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	registry := validation.NewRegistry()
	require.NoError(t, commands.RegisterValidation(registry, store))

	// Act
	err := registry.Validate(context.Background(), curry(uuid.Nil))

	// Assert
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Failures, 1)
	assert.Equal(t, "TeamID", verr.Failures[0].Field)
}
