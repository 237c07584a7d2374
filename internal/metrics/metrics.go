package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "roombook"

// Recorder counts hotel operations by outcome on a private registry.
type Recorder struct {
	registry       *prometheus.Registry
	operations     *prometheus.CounterVec
	activeBookings prometheus.Gauge
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Hotel operations by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		activeBookings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_bookings",
			Help:      "Bookings that are currently active.",
		}),
	}

	r.registry.MustRegister(r.operations, r.activeBookings)

	return r
}

func (r *Recorder) Record(operation, outcome string) {
	r.operations.WithLabelValues(operation, outcome).Inc()
}

func (r *Recorder) OperationCounter(operation, outcome string) prometheus.Counter {
	return r.operations.WithLabelValues(operation, outcome)
}

func (r *Recorder) SetActiveBookings(n int) {
	r.activeBookings.Set(float64(n))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Summary renders the non-zero operation counters as "operation/outcome=N" sorted by label.
func (r *Recorder) Summary() (string, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return "", fmt.Errorf("gather metrics: %w", err)
	}

	var parts []string

	for _, mf := range families {
		if mf.GetName() != prometheus.BuildFQName(namespace, "", "operations_total") {
			continue
		}

		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}

			parts = append(parts, fmt.Sprintf("%s/%s=%v", labels["operation"], labels["outcome"], m.GetCounter().GetValue()))
		}
	}

	sort.Strings(parts)

	return strings.Join(parts, " "), nil
}
