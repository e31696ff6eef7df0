package behaviors

import (
	"context"
	"log/slog"
	"time"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

// LoggingMiddleware logs the start and outcome of every request with its elapsed time.
// Panics are logged and then propagated unchanged.
func LoggingMiddleware() mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (response mediator.Response, err error) {
		name := mediator.RequestName(request)
		logger := common.LoggerFromContext(ctx).With(slog.String("request", name))
		ctx = common.WithLogger(ctx, logger)

		logger.InfoContext(ctx, "Handling request")
		start := time.Now()
		finished := false

		defer func() {
			elapsed := slog.Duration("elapsed", time.Since(start))
			switch {
			case !finished:
				logger.ErrorContext(ctx, "Request panicked", elapsed)
			case err != nil:
				logger.WarnContext(ctx, "Request failed", elapsed, slog.String("error", err.Error()))
			default:
				logger.InfoContext(ctx, "Request handled", elapsed)
			}
		}()

		response, err = next(ctx, request)
		finished = true
		return response, err
	}
}
