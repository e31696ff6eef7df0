package queries

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

// GetAllTeamsQuery lists every team ordered by name
type GetAllTeamsQuery struct{}

// GetAllTeamsResponse contains the ordered team list
type GetAllTeamsResponse struct {
	Teams []TeamDTO
}

// GetAllTeamsHandler serves the team list from cache, loading it from the store on a miss
type GetAllTeamsHandler struct {
	store common.Store
	cache common.Cache
	ttl   time.Duration
}

// NewGetAllTeamsHandler creates a new GetAllTeamsHandler
func NewGetAllTeamsHandler(store common.Store, cache common.Cache, ttl time.Duration) *GetAllTeamsHandler {
	return &GetAllTeamsHandler{
		store: store,
		cache: cache,
		ttl:   ttl,
	}
}

// Handle executes the GetAllTeams query
func (h *GetAllTeamsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*GetAllTeamsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetAllTeamsQuery")
	}

	if cached, ok := common.CacheGet[[]TeamDTO](h.cache, common.AllTeamsCacheKey); ok {
		return &GetAllTeamsResponse{Teams: slices.Clone(cached)}, nil
	}

	teams, err := h.store.Begin().Teams().ListOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	dtos := make([]TeamDTO, 0, len(teams))
	for _, t := range teams {
		dtos = append(dtos, toTeamDTO(t))
	}
	h.cache.Set(common.AllTeamsCacheKey, dtos, h.ttl)

	return &GetAllTeamsResponse{Teams: slices.Clone(dtos)}, nil
}
