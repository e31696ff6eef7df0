package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// DeleteTeamCommand removes a team. Only administrators may send it.
type DeleteTeamCommand struct {
	ID uuid.UUID `validate:"required"`
}

func (c *DeleteTeamCommand) RequiredRole() user.Role {
	return user.RoleAdmin
}

// DeleteTeamHandler handles the DeleteTeam command
type DeleteTeamHandler struct {
	store common.Store
	cache common.Cache
}

// NewDeleteTeamHandler creates a new DeleteTeamHandler
func NewDeleteTeamHandler(store common.Store, cache common.Cache) *DeleteTeamHandler {
	return &DeleteTeamHandler{
		store: store,
		cache: cache,
	}
}

// Handle executes the DeleteTeam command. A team that still has players is kept.
func (h *DeleteTeamHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*DeleteTeamCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteTeamCommand")
	}

	uow := h.store.Begin()
	t, err := uow.Teams().FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	players, err := uow.Players().CountByTeam(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count players of team %s: %w", t.ID, err)
	}
	if players > 0 {
		return nil, shared.NewConflictError(
			fmt.Sprintf("team %q still has %d players and cannot be deleted", t.Name, players),
		)
	}

	uow.Teams().Remove(t)
	if _, err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}
	h.cache.Remove(common.AllTeamsCacheKey)

	return nil, nil
}
