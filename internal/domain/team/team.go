package team

import (
	"time"

	"github.com/google/uuid"
)

// Team is a basketball franchise. Names are unique across the league.
type Team struct {
	ID        uuid.UUID
	Name      string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTeam creates a team with a fresh identifier.
func NewTeam(name, city string, now time.Time) *Team {
	return &Team{
		ID:        uuid.New(),
		Name:      name,
		City:      city,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename replaces the team's name and city.
func (t *Team) Rename(name, city string, now time.Time) {
	t.Name = name
	t.City = city
	t.UpdatedAt = now
}

// Roster aggregates the players currently assigned to a team.
type Roster struct {
	PlayerCount     int
	AverageHeightCm float64
	AverageWeightKg float64
	// PositionCounts is keyed by the numeric position code.
	PositionCounts map[int]int
}
