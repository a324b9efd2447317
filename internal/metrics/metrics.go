// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tripboard"

// Outcome labels.
const (
	OutcomeOK            = "ok"
	OutcomeEmpty         = "empty"
	OutcomeNotConfigured = "not_configured"
	OutcomeNetworkError  = "network_error"
	OutcomeError         = "error"
)

// Metrics holds every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	SheetFetches    *prometheus.CounterVec
	SheetRows       *prometheus.CounterVec
	LedgerMutations *prometheus.CounterVec
	LedgerResyncs   prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SheetFetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sheet_fetches_total",
			Help:      "Spreadsheet fetches by source and outcome.",
		}, []string{"source", "outcome"}),
		SheetRows: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sheet_rows_total",
			Help:      "Data rows read from spreadsheet sources.",
		}, []string{"source"}),
		LedgerMutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_mutations_total",
			Help:      "Ledger mutations by action and outcome.",
		}, []string{"action", "outcome"}),
		LedgerResyncs: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_resyncs_total",
			Help:      "Full ledger reloads after a failed mutation.",
		}),
	}
}

// Fetch records one spreadsheet fetch.
func (m *Metrics) Fetch(source, outcome string, rows int) {
	if m == nil {
		return
	}
	m.SheetFetches.WithLabelValues(source, outcome).Inc()
	if rows > 0 {
		m.SheetRows.WithLabelValues(source).Add(float64(rows))
	}
}

// Mutation records one ledger mutation.
func (m *Metrics) Mutation(action, outcome string) {
	if m == nil {
		return
	}
	m.LedgerMutations.WithLabelValues(action, outcome).Inc()
}

// Resync records one full ledger reload.
func (m *Metrics) Resync() {
	if m == nil {
		return
	}
	m.LedgerResyncs.Inc()
}
