package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/team"
)

// CreateTeamCommand represents a command to add a team to the league
type CreateTeamCommand struct {
	Name string `validate:"required,max=50"`
	City string `validate:"required,max=50"`
}

// CreateTeamResponse carries the identifier of the new team
type CreateTeamResponse struct {
	TeamID uuid.UUID
}

// CreateTeamHandler handles the CreateTeam command
type CreateTeamHandler struct {
	store common.Store
	cache common.Cache
	clock shared.Clock
}

// NewCreateTeamHandler creates a new CreateTeamHandler
func NewCreateTeamHandler(store common.Store, cache common.Cache, clock shared.Clock) *CreateTeamHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &CreateTeamHandler{
		store: store,
		cache: cache,
		clock: clock,
	}
}

// Handle executes the CreateTeam command
func (h *CreateTeamHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CreateTeamCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateTeamCommand")
	}

	uow := h.store.Begin()
	t := team.NewTeam(cmd.Name, cmd.City, h.clock.Now())
	uow.Teams().Add(t)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	h.cache.Remove(common.AllTeamsCacheKey)

	common.LoggerFromContext(ctx).InfoContext(ctx, "Team created",
		slog.String("team_id", t.ID.String()),
		slog.String("name", t.Name),
	)

	return &CreateTeamResponse{TeamID: t.ID}, nil
}
