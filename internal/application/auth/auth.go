package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// Context keys for passing authentication data through context
type authContextKey int

const (
	principalKey authContextKey = iota + 1000 // Offset from logger keys
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     user.Role
}

// RoleRestricted is implemented by requests that only some roles may send.
type RoleRestricted interface {
	RequiredRole() user.Role
}

// WithPrincipal injects the authenticated caller into the context
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromContext extracts the authenticated caller from context
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalKey).(Principal)
	return principal, ok
}

// RoleMiddleware rejects role-restricted requests whose caller lacks the role.
// Requests that do not implement RoleRestricted pass through untouched.
func RoleMiddleware() mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		restricted, ok := request.(RoleRestricted)
		if !ok {
			return next(ctx, request)
		}

		principal, ok := PrincipalFromContext(ctx)
		if !ok {
			return nil, shared.NewUnauthorizedError("authentication required")
		}

		if required := restricted.RequiredRole(); principal.Role != required {
			return nil, shared.NewForbiddenError(
				fmt.Sprintf("%s requires role %s", mediator.RequestName(request), required),
			)
		}

		return next(ctx, request)
	}
}
