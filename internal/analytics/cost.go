// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

// Cost prices audio minutes at the configured per-minute rate.
// No rounding: presentation rounding is the renderer's concern.
func Cost(audioMinutes, ratePerMinute float64) float64 {
	return audioMinutes * ratePerMinute
}
