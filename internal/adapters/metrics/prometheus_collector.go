package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace for all metrics
	namespace = "basketball"
	// Subsystem for API process metrics
	subsystem = "api"
)

// Registry is the global Prometheus registry for all metrics.
// It stays nil while metrics are disabled and every collector's Register is then a no-op.
var Registry *prometheus.Registry

// InitRegistry initializes the Prometheus registry with Go runtime and process collectors
// Should be called once at application startup if metrics are enabled
func InitRegistry() *prometheus.Registry {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Handler exposes the registry in the Prometheus text format
func Handler() http.Handler {
	if Registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// register adds collectors to the global registry when metrics are enabled
func register(collectors ...prometheus.Collector) error {
	if Registry == nil {
		return nil
	}
	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
