package team

import (
	"context"

	"github.com/google/uuid"
)

// Repository reads teams and stages team writes on the enclosing unit of work.
// Staged writes become visible only after the unit of work commits.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Team, error)
	ListOrderedByName(ctx context.Context) ([]*Team, error)
	// NameExists reports whether another team already uses name.
	// Pass uuid.Nil as excludeID to check against every team.
	NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	Roster(ctx context.Context, id uuid.UUID) (*Roster, error)

	Add(t *Team)
	Update(t *Team)
	Remove(t *Team)
}
