// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import "time"

// SegmentThresholds parameterizes the three segmentation decision tables.
// Thresholds are configuration, not constants: the cost axis in
// particular is currency-unit-agnostic.
type SegmentThresholds struct {
	// Activity axis: minimum distinct active days per label, evaluated
	// descending
	ActivityPowerUser int
	ActivityRegular   int
	ActivityModerate  int
	ActivityLight     int
	ActivityCasual    int

	// Recency axis: day windows measured against the report as-of instant
	RecencyNewDays     int
	RecencyActiveDays  int
	RecencyCoolingDays int

	// Cost axis: minimum derived cost per label, evaluated descending
	CostHigh   float64
	CostMedium float64
	CostLow    float64
}

// DefaultThresholds returns the standard segmentation thresholds.
func DefaultThresholds() SegmentThresholds {
	return SegmentThresholds{
		ActivityPowerUser:  30,
		ActivityRegular:    15,
		ActivityModerate:   8,
		ActivityLight:      4,
		ActivityCasual:     2,
		RecencyNewDays:     7,
		RecencyActiveDays:  7,
		RecencyCoolingDays: 14,
		CostHigh:           100,
		CostMedium:         20,
		CostLow:            5,
	}
}

// Config carries every knob the engine accepts. Nothing here is read
// from the environment or a clock inside the engine; the caller supplies
// all of it explicitly.
type Config struct {
	// RatePerMinute is the monetary cost of one audio minute
	RatePerMinute float64

	// Thresholds parameterizes segmentation; zero value means defaults
	Thresholds SegmentThresholds

	// TruncationCutoff is the deploy time of the long-file truncation
	// fix. Events longer than TruncationBugSeconds created strictly
	// before it count as truncated. The zero value disables the signal
	// (no event predates the zero time).
	TruncationCutoff time.Time

	// RetentionHorizon is the highest cohort week offset H tracked
	// (W+0..W+H); zero means DefaultRetentionHorizon
	RetentionHorizon int

	// AsOf is the report reference instant all recency math is measured
	// against
	AsOf time.Time
}

// DefaultRetentionHorizon is the cohort horizon used when none is configured.
const DefaultRetentionHorizon = 10

// TruncationBugSeconds is the duration past which pre-cutoff events were
// truncated by the since-fixed defect.
const TruncationBugSeconds = 420

// withDefaults returns a copy of the config with zero values replaced.
func (c Config) withDefaults() Config {
	if c.RetentionHorizon <= 0 {
		c.RetentionHorizon = DefaultRetentionHorizon
	}
	if c.Thresholds == (SegmentThresholds{}) {
		c.Thresholds = DefaultThresholds()
	}
	return c
}
