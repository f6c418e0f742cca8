// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// This file contains negative-experience detection models. A negative UX
// event is a transcription request exhibiting a known service-quality
// degradation signal: fallback to the lowest-quality model, a failed model
// assignment, or truncation of a long file by a since-fixed defect.
package models

// NegativeUXRecord aggregates degraded events for one user and records
// whether the user later received a good-quality result.
//
// The three cause counters are independent signals, not mutually
// exclusive classes: an event matching two criteria increments both
// counters and is counted twice in TotalNegativeEvents. That is
// intentional and pinned by tests.
type NegativeUXRecord struct {
	// UserID is the internal user identifier
	UserID string `json:"user_id"`

	// FallbackModelEvents counts events served by the lowest-quality
	// fallback model tier ("base")
	FallbackModelEvents int `json:"fallback_model_events"`

	// NullModelEvents counts events where processing failed to record a model
	NullModelEvents int `json:"null_model_events"`

	// TruncatedEvents counts long files (>420s) processed before the
	// truncation bug-fix cutoff date
	TruncatedEvents int `json:"truncated_events"`

	// TotalNegativeEvents is the sum of the three counters above
	TotalNegativeEvents int `json:"total_negative_events"`

	// HadNegativeUX is true when any counter is non-zero
	HadNegativeUX bool `json:"had_negative_ux"`

	// ReturnedAfterNegative is true when the user received at least one
	// good event (non-nil model, not "base") strictly after their last
	// fallback or null-model event
	ReturnedAfterNegative bool `json:"returned_after_negative"`

	// FirstEventWasNegative is true when the chronologically first event
	// was served by the fallback model or had no model recorded
	FirstEventWasNegative bool `json:"first_event_was_negative"`
}
