package queries

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
)

// GetTeamStatsQuery computes roster statistics for one team
type GetTeamStatsQuery struct {
	TeamID uuid.UUID `validate:"required"`
}

// GetTeamStatsHandler handles the GetTeamStats query
type GetTeamStatsHandler struct {
	store common.Store
}

// NewGetTeamStatsHandler creates a new GetTeamStatsHandler
func NewGetTeamStatsHandler(store common.Store) *GetTeamStatsHandler {
	return &GetTeamStatsHandler{store: store}
}

// Handle executes the GetTeamStats query and returns a *TeamStatsDTO.
// Averages are rounded to one decimal and are zero for an empty roster.
func (h *GetTeamStatsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetTeamStatsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTeamStatsQuery")
	}

	uow := h.store.Begin()
	t, err := uow.Teams().FindByID(ctx, query.TeamID)
	if err != nil {
		return nil, err
	}

	roster, err := uow.Teams().Roster(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster of team %s: %w", t.ID, err)
	}

	breakdown := make(map[string]int, len(roster.PositionCounts))
	for code, count := range roster.PositionCounts {
		breakdown[player.Position(code).String()] = count
	}

	return &TeamStatsDTO{
		TeamID:            t.ID,
		TeamName:          t.Name,
		City:              t.City,
		PlayerCount:       roster.PlayerCount,
		AverageHeightCm:   roundTenth(roster.AverageHeightCm),
		AverageWeightKg:   roundTenth(roster.AverageWeightKg),
		PositionBreakdown: breakdown,
	}, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
