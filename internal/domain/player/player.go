package player

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Position is the on-court role of a player.
type Position int

const (
	PointGuard Position = iota + 1
	ShootingGuard
	SmallForward
	PowerForward
	Center
)

var positionNames = map[Position]string{
	PointGuard:    "PointGuard",
	ShootingGuard: "ShootingGuard",
	SmallForward:  "SmallForward",
	PowerForward:  "PowerForward",
	Center:        "Center",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

func (p Position) Valid() bool {
	_, ok := positionNames[p]
	return ok
}

// Player belongs to exactly one team.
type Player struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	HeightCm     int
	WeightKg     int
	Position     Position
	JerseyNumber string
	TeamID       uuid.UUID
	// TeamName is populated on reads and ignored on writes.
	TeamName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPlayer creates a player with a fresh identifier.
func NewPlayer(firstName, lastName string, heightCm, weightKg int, position Position, jersey string, teamID uuid.UUID, now time.Time) *Player {
	return &Player{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		HeightCm:     heightCm,
		WeightKg:     weightKg,
		Position:     position,
		JerseyNumber: jersey,
		TeamID:       teamID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
