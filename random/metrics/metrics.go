// Package metrics exposes the Prometheus instrumentation for the random
// number service's background workers: packets produced, packets served
// from local fallback, and worker exits.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors groups the counters a Service registers on construction.
// Built this way (rather than package-level globals) so more than one
// Service instance, each with its own registry, can coexist in tests.
type Collectors struct {
	PacketsProduced *prometheus.CounterVec
	FallbackServed  prometheus.Counter
	WorkerExits     *prometheus.CounterVec
}

// NewCollectors builds and registers the collectors against reg. Passing
// prometheus.NewRegistry() keeps test instances isolated from the default
// global registry.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		PacketsProduced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evocore",
			Subsystem: "random",
			Name:      "packets_produced_total",
			Help:      "Packets produced by random-service workers, by kind (uniform|gauss).",
		}, []string{"kind"}),
		FallbackServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evocore",
			Subsystem: "random",
			Name:      "fallback_served_total",
			Help:      "Packet requests served by local generation after an acquire timeout or while the acquire circuit breaker was open.",
		}),
		WorkerExits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evocore",
			Subsystem: "random",
			Name:      "worker_exits_total",
			Help:      "Worker goroutine exits, by kind and reason (cancelled|error).",
		}, []string{"kind", "reason"}),
	}
	reg.MustRegister(c.PacketsProduced, c.FallbackServed, c.WorkerExits)
	return c
}
