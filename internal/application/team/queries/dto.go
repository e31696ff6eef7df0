package queries

import (
	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/domain/team"
)

// TeamDTO is the read model of a team
type TeamDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	City string    `json:"city"`
}

// TeamStatsDTO summarises a team's roster
type TeamStatsDTO struct {
	TeamID            uuid.UUID      `json:"teamId"`
	TeamName          string         `json:"teamName"`
	City              string         `json:"city"`
	PlayerCount       int            `json:"playerCount"`
	AverageHeightCm   float64        `json:"averageHeightCm"`
	AverageWeightKg   float64        `json:"averageWeightKg"`
	PositionBreakdown map[string]int `json:"positionBreakdown"`
}

func toTeamDTO(t *team.Team) TeamDTO {
	return TeamDTO{ID: t.ID, Name: t.Name, City: t.City}
}
