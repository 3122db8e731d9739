// Package metrics exposes Prometheus collectors for the allocation store.
// A nil *Collectors is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "namepool"

// Allocation outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalid       = "invalid"
	OutcomeUnavailable   = "unavailable"
	OutcomeExhausted     = "exhausted"
	OutcomeRetryExceeded = "retry_exhausted"
	OutcomeError         = "error"
)

// Collectors groups every metric the store reports.
type Collectors struct {
	allocations *prometheus.CounterVec
	issued      prometheus.Counter
	conflicts   prometheus.Counter
	remaining   prometheus.Gauge
	capacity    prometheus.Gauge
	backend     *prometheus.HistogramVec
}

// New registers the collectors on reg. It returns nil when reg is nil.
func New(reg prometheus.Registerer) *Collectors {
	if reg == nil {
		return nil
	}
	factory := promauto.With(reg)
	return &Collectors{
		allocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Allocation requests by outcome",
		}, []string{"outcome"}),
		issued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "names_issued_total",
			Help:      "Names handed out by successful allocations",
		}),
		conflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "write_conflicts_total",
			Help:      "Conditional writes rejected because the blob changed concurrently",
		}),
		remaining: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "names_remaining",
			Help:      "Unused names left in the universe",
		}),
		capacity: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "names_capacity",
			Help:      "Size of the name universe",
		}),
		backend: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_duration_seconds",
			Help:      "Latency of persistence backend calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend", "operation"}),
	}
}

// OnAllocation counts one allocation request; issued is added to the issued total.
func (c *Collectors) OnAllocation(outcome string, issued int) {
	if c == nil {
		return
	}
	c.allocations.WithLabelValues(outcome).Inc()
	if issued > 0 {
		c.issued.Add(float64(issued))
	}
}

// OnConflict counts one rejected write.
func (c *Collectors) OnConflict() {
	if c == nil {
		return
	}
	c.conflicts.Inc()
}

// OnState publishes capacity and unused count.
func (c *Collectors) OnState(capacity, unused int) {
	if c == nil {
		return
	}
	c.capacity.Set(float64(capacity))
	c.remaining.Set(float64(unused))
}

// OnBackend observes the duration of one backend call.
func (c *Collectors) OnBackend(backend, operation string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.backend.WithLabelValues(backend, operation).Observe(elapsed.Seconds())
}
