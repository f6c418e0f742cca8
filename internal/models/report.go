// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package models

import "time"

// UsageReport bundles the four derived tables handed to the rendering
// collaborator, plus provenance metadata.
type UsageReport struct {
	// Segments is the per-user segmentation table (users with >=1 event)
	Segments []UserSegment `json:"segments"`

	// NegativeUX is the per-user negative-experience table (users with >=1 event)
	NegativeUX []NegativeUXRecord `json:"negative_ux"`

	// Cohorts is the weekly cohort retention matrix
	Cohorts CohortMatrix `json:"cohorts"`

	// Distribution is the duration bucket distribution table
	Distribution DurationDistribution `json:"distribution"`

	// Meta carries report provenance
	Meta ReportMeta `json:"meta"`
}

// ReportMeta provides provenance information for a generated report.
type ReportMeta struct {
	// AsOf is the reference instant all recency math was measured against.
	// It is an explicit input, never a clock read, so a report is fully
	// reproducible from its snapshot and configuration.
	AsOf time.Time `json:"as_of"`

	// GeneratedAt is the wall-clock time the report was produced.
	// Set by the serving layer, not the engine.
	GeneratedAt time.Time `json:"generated_at"`

	// UserCount is the number of users in the snapshot
	UserCount int `json:"user_count"`

	// EventCount is the number of events in the snapshot
	EventCount int `json:"event_count"`

	// RetentionHorizon is the cohort horizon H used (columns W+0..W+H)
	RetentionHorizon int `json:"retention_horizon"`

	// QueryTimeMs is the total derivation time in milliseconds.
	// Set by the serving layer.
	QueryTimeMs int64 `json:"query_time_ms"`

	// Problems lists records excluded from aggregates because including
	// them would have corrupted results (unknown user references,
	// negative durations). Empty on a clean snapshot.
	Problems []string `json:"problems,omitempty"`
}
