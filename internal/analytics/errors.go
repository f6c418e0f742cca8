// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import "fmt"

// MissingDataError marks an event that references a user absent from the
// snapshot's user collection. The event is excluded from every aggregate
// (silently keeping it would corrupt cohort sizes) and the exclusion is
// surfaced in the report's problem list.
type MissingDataError struct {
	EventID string
	UserID  string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("event %s references unknown user %s", e.EventID, e.UserID)
}

// InvalidValueError marks an event carrying a value that cannot
// participate in aggregation: a negative duration, or a missing timestamp
// on an event that takes part in temporal ordering. This is a
// data-quality problem, not a transient failure, so there is no retry.
type InvalidValueError struct {
	EventID string
	Field   string
	Reason  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("event %s has invalid %s: %s", e.EventID, e.Field, e.Reason)
}
