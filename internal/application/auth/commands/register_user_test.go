package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/security"
	"github.com/hoopsdata/basketball-analytics/internal/application/auth/commands"
	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
	"github.com/hoopsdata/basketball-analytics/test/helpers"
)

func TestRegisterUserHandler_StoresHashedPassword(t *testing.T) {
	// Arrange
	store, _ := helpers.NewTestStore(t)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	handler := commands.NewRegisterUserHandler(store, hasher, nil)

	// Act
	resp, err := handler.Handle(context.Background(), &commands.RegisterUserCommand{
		Username: "coach",
		Password: "secret123",
		Role:     "Admin",
	})

	// Assert
	require.NoError(t, err)
	stored, err := store.Begin().Users().FindByUsername(context.Background(), "coach")
	require.NoError(t, err)
	assert.Equal(t, resp.(*commands.RegisterUserResponse).UserID, stored.ID)
	assert.Equal(t, user.RoleAdmin, stored.Role)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, hasher.Verify(stored.PasswordHash, "secret123"))
}

func TestRegisterValidation_Accounts(t *testing.T) {
	store, _ := helpers.NewTestStore(t)
	helpers.SeedUser(t, store, "taken", "hash", user.RoleUser)
	registry := validation.NewRegistry()
	require.NoError(t, commands.RegisterValidation(registry, store))

	tests := []struct {
		name         string
		cmd          *commands.RegisterUserCommand
		wantFields   []string
		wantConflict bool
	}{
		{
			name: "valid account",
			cmd:  &commands.RegisterUserCommand{Username: "coach", Password: "secret123", Role: "User"},
		},
		{
			name:       "unknown role",
			cmd:        &commands.RegisterUserCommand{Username: "coach", Password: "secret123", Role: "Owner"},
			wantFields: []string{"Role"},
		},
		{
			name:         "username taken",
			cmd:          &commands.RegisterUserCommand{Username: "taken", Password: "secret123", Role: "User"},
			wantFields:   []string{"Username"},
			wantConflict: true,
		},
		{
			name:       "short password",
			cmd:        &commands.RegisterUserCommand{Username: "coach", Password: "123", Role: "User"},
			wantFields: []string{"Password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := registry.Validate(context.Background(), tt.cmd)

			// Assert
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *shared.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields())
			assert.Equal(t, tt.wantConflict, verr.IsConflict())
		})
	}
}
