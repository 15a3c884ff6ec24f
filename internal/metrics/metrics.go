package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	// Mutations counts store mutations by entity ("config") and op ("update")
	Mutations *prometheus.CounterVec
	// Rejections counts mutations refused with a domain error, by entity and reason
	Rejections *prometheus.CounterVec
	// Entities tracks collection sizes by entity
	Entities *prometheus.GaugeVec
	// HTTPRequests counts served requests by method and status code
	HTTPRequests *prometheus.CounterVec
}

var (
	once   sync.Once
	global *Metrics
)

// New creates the metric set and registers it with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "confighub",
			Name:      "store_mutations_total",
			Help:      "Total entity store mutations",
		}, []string{"entity", "op"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "confighub",
			Name:      "store_rejections_total",
			Help:      "Total entity store mutations rejected with an error",
		}, []string{"entity", "reason"}),
		Entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "confighub",
			Name:      "store_entities",
			Help:      "Number of entities held per collection",
		}, []string{"entity"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "confighub",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests served",
		}, []string{"method", "code"}),
	}
	reg.MustRegister(m.Mutations, m.Rejections, m.Entities, m.HTTPRequests)
	return m
}

// Global returns the process-wide metrics registered with the default registry
func Global() *Metrics {
	once.Do(func() {
		global = New(prometheus.DefaultRegisterer)
	})
	return global
}
