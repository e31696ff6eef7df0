package queries

import (
	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
)

// PlayerDTO is the read model of a player
type PlayerDTO struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	HeightCm     int       `json:"heightCm"`
	WeightKg     int       `json:"weightKg"`
	Position     string    `json:"position"`
	JerseyNumber string    `json:"jerseyNumber"`
	TeamID       uuid.UUID `json:"teamId"`
	TeamName     string    `json:"teamName"`
}

// PagedResult is one page of an ordered listing
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

func toPlayerDTO(p *player.Player) PlayerDTO {
	return PlayerDTO{
		ID:           p.ID,
		FullName:     p.FullName(),
		HeightCm:     p.HeightCm,
		WeightKg:     p.WeightKg,
		Position:     p.Position.String(),
		JerseyNumber: p.JerseyNumber,
		TeamID:       p.TeamID,
		TeamName:     p.TeamName,
	}
}

func toPlayerDTOs(players []*player.Player) []PlayerDTO {
	dtos := make([]PlayerDTO, 0, len(players))
	for _, p := range players {
		dtos = append(dtos, toPlayerDTO(p))
	}
	return dtos
}
