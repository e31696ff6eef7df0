package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetricsCollector counts cache lookups by result
type CacheMetricsCollector struct {
	lookups *prometheus.CounterVec
	cache   string
}

// NewCacheMetricsCollector creates a collector labelled with the cache name
func NewCacheMetricsCollector(cache string) *CacheMetricsCollector {
	return &CacheMetricsCollector{
		cache: cache,
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cache_lookups_total",
				Help:      "Total number of cache lookups by cache and result",
			},
			[]string{"cache", "result"},
		),
	}
}

func (c *CacheMetricsCollector) Register() error {
	return register(c.lookups)
}

// RecordCacheLookup records a hit or a miss
func (c *CacheMetricsCollector) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.lookups.WithLabelValues(c.cache, result).Inc()
}
