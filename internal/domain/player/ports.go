package player

import (
	"context"

	"github.com/google/uuid"
)

// Repository reads players and stages player writes on the enclosing unit of work.
type Repository interface {
	// FindByTeam returns the team's players ordered by last then first name.
	FindByTeam(ctx context.Context, teamID uuid.UUID) ([]*Player, error)
	// ListPage returns one page of players ordered by last then first name,
	// together with the total number of players.
	ListPage(ctx context.Context, offset, limit int) ([]*Player, int64, error)
	CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)

	Add(p *Player)
}
