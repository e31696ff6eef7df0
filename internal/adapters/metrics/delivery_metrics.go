package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DeliveryMetricsCollector counts outbound event deliveries by outcome
type DeliveryMetricsCollector struct {
	deliveries *prometheus.CounterVec
}

func NewDeliveryMetricsCollector() *DeliveryMetricsCollector {
	return &DeliveryMetricsCollector{
		deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "event_deliveries_total",
				Help:      "Total number of outbound events by event name and delivery outcome",
			},
			[]string{"event", "outcome"},
		),
	}
}

func (c *DeliveryMetricsCollector) Register() error {
	return register(c.deliveries)
}

func (c *DeliveryMetricsCollector) RecordDelivery(event, outcome string) {
	c.deliveries.WithLabelValues(event, outcome).Inc()
}
