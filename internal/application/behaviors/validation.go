package behaviors

import (
	"context"

	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

// Validator checks a request before it reaches its handler.
type Validator interface {
	Validate(ctx context.Context, request any) error
}

// ValidationMiddleware short-circuits requests that fail validation.
func ValidationMiddleware(v Validator) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if err := v.Validate(ctx, request); err != nil {
			return nil, err
		}
		return next(ctx, request)
	}
}
