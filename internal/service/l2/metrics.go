package l2_service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationPasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ipo_evaluation_passes_total",
		Help: "Evaluation passes over a query snapshot, by outcome",
	}, []string{"status"})

	evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ipo_evaluation_duration_seconds",
		Help:    "Time to fetch a snapshot and evaluate it",
		Buckets: prometheus.DefBuckets,
	})

	recordsEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ipo_records_evaluated_total",
		Help: "Company records run through risk evaluation",
	})

	highRiskRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ipo_high_risk_records",
		Help: "High risk records in the latest evaluation pass",
	})
)
