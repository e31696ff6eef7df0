package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/security"
	"github.com/hoopsdata/basketball-analytics/internal/application/auth/queries"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
	"github.com/hoopsdata/basketball-analytics/test/helpers"
)

func newLoginHandler(t *testing.T) (*queries.LoginHandler, *security.JWTService, *user.User) {
	t.Helper()
	store, _ := helpers.NewTestStore(t)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	coach := helpers.SeedUser(t, store, "coach", hash, user.RoleAdmin)

	clock := shared.NewMockClock(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC))
	tokens := security.NewJWTService(helpers.TestJWTSecret, "basketball-analytics", "basketball-analytics-clients", time.Hour, clock)
	return queries.NewLoginHandler(store, hasher, tokens), tokens, coach
}

func TestLoginHandler_IssuesTokenForValidCredentials(t *testing.T) {
	// Arrange
	handler, tokens, coach := newLoginHandler(t)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.LoginQuery{Username: "coach", Password: "secret123"})

	// Assert
	require.NoError(t, err)
	principal, err := tokens.Verify(resp.(*queries.LoginResponse).Token)
	require.NoError(t, err)
	assert.Equal(t, coach.ID, principal.UserID)
	assert.Equal(t, user.RoleAdmin, principal.Role)
}

func TestLoginHandler_FailuresAreIndistinguishable(t *testing.T) {
	handler, _, _ := newLoginHandler(t)

	tests := []struct {
		name  string
		query *queries.LoginQuery
	}{
		{"wrong password", &queries.LoginQuery{Username: "coach", Password: "nope"}},
		{"unknown user", &queries.LoginQuery{Username: "ghost", Password: "secret123"}},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			_, err := handler.Handle(context.Background(), tt.query)

			// Assert
			var verr *shared.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []string{"Username"}, verr.Fields())
			messages = append(messages, err.Error())
		})
	}

	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
}
