package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// UpdateTeamCommand renames an existing team
type UpdateTeamCommand struct {
	ID   uuid.UUID `validate:"required"`
	Name string    `validate:"required,max=50"`
	City string    `validate:"required,max=50"`
}

// UpdateTeamHandler handles the UpdateTeam command
type UpdateTeamHandler struct {
	store common.Store
	cache common.Cache
	clock shared.Clock
}

// NewUpdateTeamHandler creates a new UpdateTeamHandler
func NewUpdateTeamHandler(store common.Store, cache common.Cache, clock shared.Clock) *UpdateTeamHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &UpdateTeamHandler{
		store: store,
		cache: cache,
		clock: clock,
	}
}

// Handle executes the UpdateTeam command. It returns no response on success.
func (h *UpdateTeamHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*UpdateTeamCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateTeamCommand")
	}

	uow := h.store.Begin()
	t, err := uow.Teams().FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	t.Rename(cmd.Name, cmd.City, h.clock.Now())
	uow.Teams().Update(t)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	h.cache.Remove(common.AllTeamsCacheKey)

	return nil, nil
}
