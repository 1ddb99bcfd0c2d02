package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	MovementsRegistered *prometheus.CounterVec
	DuesRunsTotal       prometheus.Counter

	// Consolidation metrics
	ConsolidationRuns     prometheus.Counter
	ConsolidationDuration prometheus.Histogram
	UnitsBySeverity       *prometheus.GaugeVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		MovementsRegistered: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "condoledger_movements_registered_total",
				Help: "Total number of ledger movements registered by kind",
			},
			[]string{"kind"},
		),
		DuesRunsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "condoledger_dues_runs_total",
			Help: "Total number of mass monthly dues runs",
		}),

		ConsolidationRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "condoledger_consolidation_runs_total",
			Help: "Total number of delinquency consolidation runs",
		}),
		ConsolidationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "condoledger_consolidation_duration_seconds",
			Help:    "Duration of consolidation runs",
			Buckets: prometheus.DefBuckets,
		}),
		UnitsBySeverity: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "condoledger_units_by_severity",
				Help: "Number of units per delinquency severity after the last consolidation",
			},
			[]string{"severity"},
		),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "condoledger_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
	}
}
