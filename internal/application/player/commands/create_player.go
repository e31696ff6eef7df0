package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/events"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// CreatePlayerCommand signs a player to an existing team
type CreatePlayerCommand struct {
	FirstName    string    `validate:"required,max=50"`
	LastName     string    `validate:"required,max=50"`
	HeightCm     int       `validate:"gte=100,lte=250"`
	WeightKg     int       `validate:"gte=40,lte=200"`
	Position     int       `validate:"gte=1,lte=5"`
	JerseyNumber string    `validate:"required,max=3"`
	TeamID       uuid.UUID `validate:"required"`
}

// CreatePlayerResponse carries the identifier of the new player
type CreatePlayerResponse struct {
	PlayerID uuid.UUID
}

// CreatePlayerHandler handles the CreatePlayer command
type CreatePlayerHandler struct {
	store     common.Store
	publisher common.EventPublisher
	clock     shared.Clock
}

// NewCreatePlayerHandler creates a new CreatePlayerHandler
func NewCreatePlayerHandler(store common.Store, publisher common.EventPublisher, clock shared.Clock) *CreatePlayerHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &CreatePlayerHandler{
		store:     store,
		publisher: publisher,
		clock:     clock,
	}
}

// Handle executes the CreatePlayer command.
// The PlayerCreated event is published only after the commit succeeds; a failed
// publish is logged and does not fail the command.
func (h *CreatePlayerHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CreatePlayerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreatePlayerCommand")
	}

	now := h.clock.Now()
	p := player.NewPlayer(
		cmd.FirstName,
		cmd.LastName,
		cmd.HeightCm,
		cmd.WeightKg,
		player.Position(cmd.Position),
		cmd.JerseyNumber,
		cmd.TeamID,
		now,
	)

	uow := h.store.Begin()
	uow.Players().Add(p)
	if _, err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	event := &events.PlayerCreatedEvent{
		PlayerID:  p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		TeamID:    p.TeamID,
		CreatedAt: now,
	}
	if h.publisher != nil {
		if err := h.publisher.Publish(ctx, event); err != nil {
			common.LoggerFromContext(ctx).WarnContext(ctx, "Failed to publish player created event",
				slog.String("player_id", p.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return &CreatePlayerResponse{PlayerID: p.ID}, nil
}
