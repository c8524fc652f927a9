package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/getchurch/church/pkg/resolver"
)

// Namespace prefixes every metric name.
const Namespace = "church"

// Collector records resolver events. It is safe for concurrent use.
type Collector struct {
	loads        *prometheus.CounterVec
	hits         *prometheus.CounterVec
	failures     *prometheus.CounterVec
	loadDuration prometheus.Histogram
}

var _ resolver.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg. A nil reg
// leaves the metrics unregistered.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "dataset_loads_total",
				Help:      "A counter of datasets read from the reference store",
			},
			[]string{"category", "locale"},
		),
		hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "dataset_cache_hits_total",
				Help:      "A counter of datasets served from the resolver cache",
			},
			[]string{"category", "locale"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "dataset_failures_total",
				Help:      "A counter of failed dataset resolutions",
			},
			[]string{"reason"},
		),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "A histogram of dataset first-load latencies",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(c.loads, c.hits, c.failures, c.loadDuration)
	}
	return c
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// DatasetLoaded implements resolver.Observer.
func (c *Collector) DatasetLoaded(category, locale string, _ int, d time.Duration) {
	c.loads.WithLabelValues(category, locale).Inc()
	c.loadDuration.Observe(d.Seconds())
}

// CacheHit implements resolver.Observer.
func (c *Collector) CacheHit(category, locale string) {
	c.hits.WithLabelValues(category, locale).Inc()
}

// ResolveFailed implements resolver.Observer.
func (c *Collector) ResolveFailed(_, _ string, err error) {
	c.failures.WithLabelValues(resolver.Reason(err)).Inc()
}
