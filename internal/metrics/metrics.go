// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// Package metrics provides Prometheus instrumentation for Vocallytics:
// API latency and throughput, DuckDB query performance, ingest volume,
// and report derivation timing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Database metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Ingest metrics
	IngestedUsersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingested_users_total",
			Help: "Total number of user records ingested",
		},
	)

	IngestedEventsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingested_events_total",
			Help: "Total number of usage events ingested",
		},
	)

	// Report derivation metrics
	ReportBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_build_duration_seconds",
			Help:    "Duration of full usage-report derivations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ReportProblemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "report_problems_total",
			Help: "Total number of records excluded from reports as data-quality problems",
		},
	)
)

// RecordAPIRequest records one served API request.
func RecordAPIRequest(endpoint, method string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// TimeDBQuery returns a function that records the elapsed query time
// when called, for use with defer.
func TimeDBQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DBQueryDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
