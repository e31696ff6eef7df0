package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// RegisterValidation attaches the storage-backed player rules to the registry
func RegisterValidation(registry *validation.Registry, store common.Store) error {
	return validation.Register(registry, validation.RuleSet[*CreatePlayerCommand]{
		Checks: []validation.Check[*CreatePlayerCommand]{
			{
				Field:   "TeamID",
				Message: "The specified team does not exist.",
				Predicate: func(ctx context.Context, cmd *CreatePlayerCommand) (bool, error) {
					if cmd.TeamID == uuid.Nil {
						return true, nil
					}
					_, err := store.Begin().Teams().FindByID(ctx, cmd.TeamID)
					if errors.Is(err, shared.ErrNotFound) {
						return false, nil
					}
					return err == nil, err
				},
			},
		},
	})
}
