package commands

import (
	"context"
	"fmt"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// RegisterValidation attaches the account rules to the registry
func RegisterValidation(registry *validation.Registry, store common.Store) error {
	return validation.Register(registry, validation.RuleSet[*RegisterUserCommand]{
		Checks: []validation.Check[*RegisterUserCommand]{
			{
				Field:   "Role",
				Message: "Role must be either 'Admin' or 'User'.",
				Predicate: func(ctx context.Context, cmd *RegisterUserCommand) (bool, error) {
					return user.Role(cmd.Role).Valid(), nil
				},
			},
			{
				Field: "Username",
				Kind:  shared.FailureConflict,
				Predicate: func(ctx context.Context, cmd *RegisterUserCommand) (bool, error) {
					if cmd.Username == "" {
						return true, nil
					}
					exists, err := store.Begin().Users().UsernameExists(ctx, cmd.Username)
					return !exists, err
				},
				Describe: func(cmd *RegisterUserCommand) string {
					return fmt.Sprintf("Username '%s' already exists", cmd.Username)
				},
			},
		},
	})
}
