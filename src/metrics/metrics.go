package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportRequests counts report generations by jurisdiction, loan type
	// and outcome.
	ReportRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propfolio_report_requests_total",
			Help: "Total cashflow report requests",
		},
		[]string{"jurisdiction", "loan_type", "status"},
	)

	// CacheLookups counts report cache hits and misses.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propfolio_report_cache_lookups_total",
			Help: "Report cache lookups by result",
		},
		[]string{"result"},
	)

	// ReportDuration tracks end-to-end report generation latency.
	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "propfolio_report_duration_seconds",
			Help:    "Report generation duration",
			Buckets: prometheus.DefBuckets,
		},
	)
)
