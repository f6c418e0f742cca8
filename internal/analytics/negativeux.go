// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"time"

	"github.com/vocallytics/vocallytics/internal/models"
)

// FallbackModel is the lowest-quality transcription tier. Serving a
// request with it is a degradation signal.
const FallbackModel = "base"

// isFallback reports whether the event was served by the fallback model.
func isFallback(e models.UsageEvent) bool {
	return e.ModelUsed != nil && *e.ModelUsed == FallbackModel
}

// isNullModel reports whether processing failed to record a model.
func isNullModel(e models.UsageEvent) bool {
	return e.ModelUsed == nil
}

// isTruncated reports whether the event hit the long-file truncation
// defect: longer than TruncationBugSeconds and created strictly before
// the fix cutoff.
func isTruncated(e models.UsageEvent, cutoff time.Time) bool {
	return e.DurationSeconds > TruncationBugSeconds && e.CreatedAt.Before(cutoff)
}

// DetectNegativeUX classifies one user's events and aggregates them into
// a NegativeUXRecord. Events must be sorted ascending by CreatedAt.
//
// The three cause counters are independent signals: an event that is both
// a fallback and a pre-cutoff truncation increments both counters, and
// TotalNegativeEvents double-counts it. Truncation alone does not make an
// event "negative" for recovery purposes, because it says nothing about
// model quality; recovery is measured from the last fallback or
// null-model event.
//
// Users with zero events are excluded upstream and never reach this
// function.
func DetectNegativeUX(userID string, events []models.UsageEvent, truncationCutoff time.Time) models.NegativeUXRecord {
	rec := models.NegativeUXRecord{UserID: userID}

	var lastNegativeAt time.Time
	for _, e := range events {
		if isFallback(e) {
			rec.FallbackModelEvents++
		}
		if isNullModel(e) {
			rec.NullModelEvents++
		}
		if isTruncated(e, truncationCutoff) {
			rec.TruncatedEvents++
		}
		if (isFallback(e) || isNullModel(e)) && e.CreatedAt.After(lastNegativeAt) {
			lastNegativeAt = e.CreatedAt
		}
	}

	rec.TotalNegativeEvents = rec.FallbackModelEvents + rec.NullModelEvents + rec.TruncatedEvents
	rec.HadNegativeUX = rec.TotalNegativeEvents > 0

	// Recovery: at least one good-quality result strictly after the last
	// fallback/null event. With no such event, there is nothing to
	// recover from and the flag stays false.
	if !lastNegativeAt.IsZero() {
		for _, e := range events {
			if e.CreatedAt.After(lastNegativeAt) && e.ModelUsed != nil && *e.ModelUsed != FallbackModel {
				rec.ReturnedAfterNegative = true
				break
			}
		}
	}

	if len(events) > 0 {
		first := events[0]
		rec.FirstEventWasNegative = isFallback(first) || isNullModel(first)
	}

	return rec
}
