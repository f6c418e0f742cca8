// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vocallytics/vocallytics/internal/config"
)

// NewRouter assembles the chi router: global middleware, health
// endpoints, the report and ingest API, and Prometheus metrics.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(Instrument)

	// Health endpoints get permissive rate limiting so monitors can poll
	// frequently without opening an abuse vector.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, time.Minute))
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	// Data endpoints share the configured per-IP budget.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))

		r.Get("/report", h.Report)
		r.Get("/report/segments", h.ReportSegments)
		r.Get("/report/negative-ux", h.ReportNegativeUX)
		r.Get("/report/cohorts", h.ReportCohorts)
		r.Get("/report/distribution", h.ReportDistribution)
		r.Get("/users", h.Users)

		r.Post("/ingest/users", h.IngestUsers)
		r.Post("/ingest/events", h.IngestEvents)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
