package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

// GetTeamByIDQuery fetches a single team
type GetTeamByIDQuery struct {
	ID uuid.UUID `validate:"required"`
}

// GetTeamByIDHandler handles the GetTeamByID query
type GetTeamByIDHandler struct {
	store common.Store
}

// NewGetTeamByIDHandler creates a new GetTeamByIDHandler
func NewGetTeamByIDHandler(store common.Store) *GetTeamByIDHandler {
	return &GetTeamByIDHandler{store: store}
}

// Handle executes the GetTeamByID query and returns a *TeamDTO
func (h *GetTeamByIDHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetTeamByIDQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTeamByIDQuery")
	}

	t, err := h.store.Begin().Teams().FindByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	dto := toTeamDTO(t)
	return &dto, nil
}
