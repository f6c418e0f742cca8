// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/vocallytics/vocallytics/internal/analytics"
	"github.com/vocallytics/vocallytics/internal/config"
	"github.com/vocallytics/vocallytics/internal/logging"
	"github.com/vocallytics/vocallytics/internal/metrics"
	"github.com/vocallytics/vocallytics/internal/models"
)

// Store is the data-access surface the handlers need. *database.DB
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
	UpsertUsers(ctx context.Context, users []models.User) (int, error)
	InsertEvents(ctx context.Context, events []models.UsageEvent) (int, error)
	Ping(ctx context.Context) error
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	store Store
	cfg   *config.Config
}

// NewHandler creates the handler set.
func NewHandler(store Store, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// HealthLive reports process liveness.
//
// Method: GET
// Path: /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady reports readiness, including database connectivity.
//
// Method: GET
// Path: /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database not reachable")
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]string{"status": "ready"})
}

// reportParams extracts the optional as_of and horizon query parameters,
// falling back to configuration. as_of defaults to the current UTC
// instant at the serving layer; the engine itself never reads a clock.
func (h *Handler) reportParams(r *http.Request) (analytics.Config, error) {
	asOf := time.Now().UTC()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return analytics.Config{}, &paramError{param: "as_of", reason: "must be RFC 3339"}
		}
		asOf = parsed.UTC()
	}

	engineCfg := h.cfg.EngineConfig(asOf)

	if raw := r.URL.Query().Get("horizon"); raw != "" {
		horizon, err := strconv.Atoi(raw)
		if err != nil || horizon < 1 || horizon > 52 {
			return analytics.Config{}, &paramError{param: "horizon", reason: "must be an integer in [1,52]"}
		}
		engineCfg.RetentionHorizon = horizon
	}

	return engineCfg, nil
}

type paramError struct {
	param  string
	reason string
}

func (e *paramError) Error() string { return e.param + " " + e.reason }

// buildReport snapshots the store and runs the derivation engine.
func (h *Handler) buildReport(r *http.Request) (*models.UsageReport, error) {
	engineCfg, err := h.reportParams(r)
	if err != nil {
		return nil, err
	}

	snap, err := h.store.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report := analytics.BuildReport(snap, engineCfg)
	elapsed := time.Since(start)

	report.Meta.GeneratedAt = time.Now().UTC()
	report.Meta.QueryTimeMs = elapsed.Milliseconds()

	metrics.ReportBuildDuration.Observe(elapsed.Seconds())
	metrics.ReportProblemsTotal.Add(float64(len(report.Meta.Problems)))

	for _, p := range report.Meta.Problems {
		l := logging.With("engine")
		l.Warn().Str("problem", p).Msg("record excluded from report")
	}

	return report, nil
}

// respondReportError maps report derivation failures to envelope errors.
func respondReportError(w http.ResponseWriter, r *http.Request, err error) {
	if pe, ok := err.(*paramError); ok {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAM", pe.Error())
		return
	}
	l := logging.With("api")
	l.Error().Err(err).Msg("report derivation failed")
	respondError(w, r, http.StatusInternalServerError, "REPORT_FAILED", "failed to derive report")
}

// Report returns the full usage report: all four derived tables.
//
// Method: GET
// Path: /api/v1/report
// Query: as_of (RFC 3339, optional), horizon (1-52, optional)
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		respondReportError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, report)
}

// ReportSegments returns only the per-user segmentation table.
//
// Method: GET
// Path: /api/v1/report/segments
func (h *Handler) ReportSegments(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		respondReportError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"segments": report.Segments,
		"meta":     report.Meta,
	})
}

// ReportNegativeUX returns only the per-user negative-experience table.
//
// Method: GET
// Path: /api/v1/report/negative-ux
func (h *Handler) ReportNegativeUX(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		respondReportError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"negative_ux": report.NegativeUX,
		"meta":        report.Meta,
	})
}

// ReportCohorts returns only the cohort retention matrix.
//
// Method: GET
// Path: /api/v1/report/cohorts
func (h *Handler) ReportCohorts(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		respondReportError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"cohorts": report.Cohorts,
		"meta":    report.Meta,
	})
}

// ReportDistribution returns only the duration distribution table.
//
// Method: GET
// Path: /api/v1/report/distribution
func (h *Handler) ReportDistribution(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		respondReportError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"distribution": report.Distribution,
		"meta":         report.Meta,
	})
}

// Users returns the validated per-user aggregates.
//
// Method: GET
// Path: /api/v1/users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Snapshot(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "SNAPSHOT_FAILED", "failed to load snapshot")
		return
	}

	aggs, problems := analytics.Aggregates(snap, h.cfg.Analytics.RatePerMinute)
	payload := map[string]interface{}{"users": aggs}
	if len(problems) > 0 {
		strs := make([]string, len(problems))
		for i, p := range problems {
			strs[i] = p.Error()
		}
		payload["problems"] = strs
	}
	respondSuccess(w, r, http.StatusOK, payload)
}
