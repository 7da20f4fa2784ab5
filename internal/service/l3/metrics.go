package l3_service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collaboratorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ipo_collaborator_duration_seconds",
		Help:    "Latency of the DRHP, sentiment and prediction calls",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"collaborator", "status"})

	submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ipo_query_submissions_total",
		Help: "IPO query submissions, by result",
	}, []string{"result"})
)
