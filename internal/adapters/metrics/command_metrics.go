package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// CommandMetricsCollector handles all command/query execution metrics
type CommandMetricsCollector struct {
	commandDuration *prometheus.HistogramVec
	commandsTotal   *prometheus.CounterVec
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "Command and query execution duration distribution",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"request", "status"},
		),

		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total number of commands and queries dispatched by type and outcome",
			},
			[]string{"request", "status"},
		),
	}
}

// Register registers all command metrics with the Prometheus registry
func (c *CommandMetricsCollector) Register() error {
	return register(c.commandDuration, c.commandsTotal)
}

// RecordCommandExecution records one dispatch and its outcome
func (c *CommandMetricsCollector) RecordCommandExecution(requestName string, duration float64, err error) {
	status := Outcome(err)
	c.commandDuration.WithLabelValues(requestName, status).Observe(duration)
	c.commandsTotal.WithLabelValues(requestName, status).Inc()
}

// Outcome classifies a dispatch result into a low-cardinality label
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, shared.ErrConflict):
		return "conflict"
	case errors.Is(err, shared.ErrValidation):
		return "invalid"
	case errors.Is(err, shared.ErrNotFound):
		return "not_found"
	case errors.Is(err, shared.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, shared.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
