package payout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	calculations *prometheus.CounterVec
	skipped      prometheus.Counter
	warnings     prometheus.Counter
	finalized    prometheus.Counter
	paid         prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		calculations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "payout_calculations_total",
			Help: "Payout batch calculations run, partitioned by mode",
		}, []string{"mode"}),
		skipped: f.NewCounter(prometheus.CounterOpts{
			Name: "payout_producers_skipped_total",
			Help: "Producers left out of a batch because of missing plans or bad data",
		}),
		warnings: f.NewCounter(prometheus.CounterOpts{
			Name: "payout_warnings_total",
			Help: "Warnings emitted by payout calculations",
		}),
		finalized: f.NewCounter(prometheus.CounterOpts{
			Name: "payout_finalized_total",
			Help: "Payout rows moved from draft to finalized",
		}),
		paid: f.NewCounter(prometheus.CounterOpts{
			Name: "payout_paid_total",
			Help: "Payout rows marked paid",
		}),
	}
}

func (m *Metrics) observeBatch(mode string, producers, payouts, warnings int) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(mode).Inc()
	if skipped := producers - payouts; skipped > 0 {
		m.skipped.Add(float64(skipped))
	}
	m.warnings.Add(float64(warnings))
}

func (m *Metrics) observeFinalized(n int64) {
	if m == nil {
		return
	}
	m.finalized.Add(float64(n))
}

func (m *Metrics) observePaid() {
	if m == nil {
		return
	}
	m.paid.Inc()
}
