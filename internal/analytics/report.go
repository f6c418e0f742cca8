// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"sort"

	"github.com/vocallytics/vocallytics/internal/models"
)

// BuildReport derives the full usage report from a snapshot.
//
// The computation is pure: identical snapshot and config always yield an
// identical report. Records that could not be included without corrupting
// aggregates are excluded and listed in Meta.Problems rather than
// silently dropped or turned into a hard failure.
func BuildReport(snap models.Snapshot, cfg Config) *models.UsageReport {
	cfg = cfg.withDefaults()

	agg := aggregate(snap, cfg.RatePerMinute)

	// Segmentation and negative-experience detection cover users with at
	// least one valid event; zero-event users still count toward their
	// cohort's size below.
	activeIDs := agg.activeUserIDs()
	segments := make([]models.UserSegment, 0, len(activeIDs))
	negative := make([]models.NegativeUXRecord, 0, len(activeIDs))
	for _, id := range activeIDs {
		segments = append(segments, Segment(*agg.byUser[id], cfg.Thresholds, cfg.AsOf))
		negative = append(negative, DetectNegativeUX(id, agg.eventsByUser[id], cfg.TruncationCutoff))
	}

	cohorts := ComputeCohorts(snap.Users, agg.eventsByUser, cfg.RetentionHorizon)
	distribution := SummarizeDistribution(agg.events, cfg.RatePerMinute)

	meta := models.ReportMeta{
		AsOf:             cfg.AsOf,
		UserCount:        len(snap.Users),
		EventCount:       len(snap.Events),
		RetentionHorizon: cfg.RetentionHorizon,
	}
	for _, p := range agg.problems {
		meta.Problems = append(meta.Problems, p.Error())
	}

	return &models.UsageReport{
		Segments:     segments,
		NegativeUX:   negative,
		Cohorts:      cohorts,
		Distribution: distribution,
		Meta:         meta,
	}
}

// Aggregates exposes the validated per-user aggregates for callers that
// need them outside a full report, e.g. the users API endpoint. The
// problems slice mirrors what BuildReport reports in Meta.Problems.
func Aggregates(snap models.Snapshot, ratePerMinute float64) ([]models.UserAggregate, []error) {
	agg := aggregate(snap, ratePerMinute)
	ids := make([]string, 0, len(agg.byUser))
	for id := range agg.byUser {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]models.UserAggregate, 0, len(ids))
	for _, id := range ids {
		out = append(out, *agg.byUser[id])
	}
	return out, agg.problems
}
