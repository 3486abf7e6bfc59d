package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venturehive_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "venturehive_http_request_duration_seconds",
			Help: "HTTP request latency by route",
		},
		[]string{"method", "route"},
	)

	OracleCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venturehive_oracle_calls_total",
			Help: "Scoring oracle calls by outcome (refined or fallback)",
		},
		[]string{"outcome"},
	)

	MatchScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "venturehive_match_scores",
			Help:    "Distribution of produced match scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

const (
	OracleOutcomeRefined  = "refined"
	OracleOutcomeFallback = "fallback"
)
