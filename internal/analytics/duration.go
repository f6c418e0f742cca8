// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import "math"

// UnknownBucket is the sentinel label for durations that cannot be
// categorized (NaN, infinite, negative). It matches no catalog bucket and
// is never counted in bucket totals.
const UnknownBucket = "Unknown"

// LongFileSeconds is the long-file line: events strictly longer than this
// are reported as long files in the distribution summary.
const LongFileSeconds = 600

// DurationBucket is one entry of the ordered bucket catalog. Bounds are
// inclusive on both ends; MaxSeconds of -1 marks the final unbounded
// bucket.
type DurationBucket struct {
	Label      string
	MinSeconds int
	MaxSeconds int
}

// durationBuckets is the fixed catalog. The ranges cover [0, inf) with no
// gaps and no overlaps; the last entry is the unbounded fallback.
var durationBuckets = []DurationBucket{
	{Label: "0-30 sec", MinSeconds: 0, MaxSeconds: 30},
	{Label: "31-60 sec", MinSeconds: 31, MaxSeconds: 60},
	{Label: "1-2 min", MinSeconds: 61, MaxSeconds: 120},
	{Label: "2-5 min", MinSeconds: 121, MaxSeconds: 300},
	{Label: "5-10 min", MinSeconds: 301, MaxSeconds: 600},
	{Label: "10-30 min", MinSeconds: 601, MaxSeconds: 1800},
	{Label: "30-60 min", MinSeconds: 1801, MaxSeconds: 3600},
	{Label: "60+ min", MinSeconds: 3601, MaxSeconds: -1},
}

// BucketCatalog returns a copy of the ordered duration bucket catalog.
func BucketCatalog() []DurationBucket {
	out := make([]DurationBucket, len(durationBuckets))
	copy(out, durationBuckets)
	return out
}

// Categorize maps an audio duration in seconds to its bucket label.
//
// The duration is truncated to whole seconds and matched against the
// catalog in order, first match wins. Unrepresentable values yield
// UnknownBucket. The final catalog entry is unbounded, so any
// non-negative duration lands somewhere even if the catalog had a gap.
func Categorize(durationSeconds float64) string {
	if math.IsNaN(durationSeconds) || math.IsInf(durationSeconds, 0) || durationSeconds < 0 {
		return UnknownBucket
	}

	s := int(durationSeconds)
	for _, b := range durationBuckets {
		if b.MaxSeconds < 0 {
			return b.Label
		}
		if s >= b.MinSeconds && s <= b.MaxSeconds {
			return b.Label
		}
	}
	return durationBuckets[len(durationBuckets)-1].Label
}

// IsLongFile reports whether a duration is past the long-file line.
func IsLongFile(durationSeconds float64) bool {
	return durationSeconds > LongFileSeconds
}
