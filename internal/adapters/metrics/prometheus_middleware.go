package metrics

import (
	"context"
	"time"

	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records command execution metrics
//
// This middleware wraps all command/query execution and records:
// - Execution duration (histogram)
// - Outcome counts (counter)
//
// Request names drop their package prefix, e.g. "*commands.CreateTeamCommand" becomes "CreateTeamCommand".
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(mediator.RequestName(request), time.Since(start).Seconds(), err)

		return response, err
	}
}
