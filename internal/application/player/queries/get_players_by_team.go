package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

// GetPlayersByTeamQuery lists the roster of one team
type GetPlayersByTeamQuery struct {
	TeamID uuid.UUID `validate:"required"`
}

// GetPlayersByTeamResponse contains the roster ordered by name
type GetPlayersByTeamResponse struct {
	Players []PlayerDTO
}

// GetPlayersByTeamHandler handles the GetPlayersByTeam query
type GetPlayersByTeamHandler struct {
	store common.Store
}

// NewGetPlayersByTeamHandler creates a new GetPlayersByTeamHandler
func NewGetPlayersByTeamHandler(store common.Store) *GetPlayersByTeamHandler {
	return &GetPlayersByTeamHandler{store: store}
}

// Handle executes the GetPlayersByTeam query. An unknown team yields an empty roster.
func (h *GetPlayersByTeamHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetPlayersByTeamQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPlayersByTeamQuery")
	}

	players, err := h.store.Begin().Players().FindByTeam(ctx, query.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players of team %s: %w", query.TeamID, err)
	}

	return &GetPlayersByTeamResponse{Players: toPlayerDTOs(players)}, nil
}
