package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

const duplicateTeamName = "A team with this name already exists."

// RegisterValidation attaches the storage-backed team rules to the registry
func RegisterValidation(registry *validation.Registry, store common.Store) error {
	if err := validation.Register(registry, validation.RuleSet[*CreateTeamCommand]{
		Checks: []validation.Check[*CreateTeamCommand]{
			{
				Field:   "Name",
				Message: duplicateTeamName,
				Kind:    shared.FailureConflict,
				Predicate: func(ctx context.Context, cmd *CreateTeamCommand) (bool, error) {
					return nameAvailable(ctx, store, cmd.Name, uuid.Nil)
				},
			},
		},
	}); err != nil {
		return err
	}

	return validation.Register(registry, validation.RuleSet[*UpdateTeamCommand]{
		Checks: []validation.Check[*UpdateTeamCommand]{
			{
				Field:   "Name",
				Message: duplicateTeamName,
				Kind:    shared.FailureConflict,
				Predicate: func(ctx context.Context, cmd *UpdateTeamCommand) (bool, error) {
					return nameAvailable(ctx, store, cmd.Name, cmd.ID)
				},
			},
		},
	})
}

func nameAvailable(ctx context.Context, store common.Store, name string, excludeID uuid.UUID) (bool, error) {
	if name == "" {
		return true, nil
	}
	exists, err := store.Begin().Teams().NameExists(ctx, name, excludeID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
