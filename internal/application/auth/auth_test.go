package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/application/auth"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

type purgeCommand struct{}

func (purgeCommand) RequiredRole() user.Role { return user.RoleAdmin }

type browseQuery struct{}

func newPipeline(t *testing.T) (mediator.Mediator, *int) {
	t.Helper()
	calls := 0
	m := mediator.NewMediator()
	require.NoError(t, m.RegisterMiddleware(auth.RoleMiddleware()))
	handler := mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		calls++
		return nil, nil
	})
	require.NoError(t, mediator.RegisterHandler[*purgeCommand](m, handler))
	require.NoError(t, mediator.RegisterHandler[*browseQuery](m, handler))
	return m, &calls
}

func TestRoleMiddleware(t *testing.T) {
	admin := auth.Principal{UserID: uuid.New(), Username: "root", Role: user.RoleAdmin}
	member := auth.Principal{UserID: uuid.New(), Username: "fan", Role: user.RoleUser}

	tests := []struct {
		name      string
		ctx       context.Context
		request   mediator.Request
		wantErr   error
		wantCalls int
	}{
		{"anonymous restricted", context.Background(), &purgeCommand{}, shared.ErrUnauthorized, 0},
		{"wrong role", auth.WithPrincipal(context.Background(), member), &purgeCommand{}, shared.ErrForbidden, 0},
		{"admin allowed", auth.WithPrincipal(context.Background(), admin), &purgeCommand{}, nil, 1},
		{"unrestricted anonymous", context.Background(), &browseQuery{}, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, calls := newPipeline(t)

			_, err := m.Send(tt.ctx, tt.request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, *calls)
		})
	}
}
