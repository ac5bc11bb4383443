package notify

import (
	"context"

	"repairshop/internal/domain/order"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver counts transitions per resulting status.
type MetricsObserver struct {
	transitions *prometheus.CounterVec
}

func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "repairshop",
		Name:      "order_transitions_total",
		Help:      "Service order transitions by resulting status.",
	}, []string{"status"})
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return &MetricsObserver{transitions: c}, nil
}

func (m *MetricsObserver) Notify(_ context.Context, ev order.Event) {
	m.transitions.WithLabelValues(ev.Status.String()).Inc()
}

func (m *MetricsObserver) Collector() *prometheus.CounterVec {
	return m.transitions
}
