// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"math"
	"testing"
)

func TestCategorizeBoundaries(t *testing.T) {

	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0-30 sec"},
		{30, "0-30 sec"},
		{30.9, "0-30 sec"}, // truncates to 30
		{31, "31-60 sec"},
		{60, "31-60 sec"},
		{61, "1-2 min"},
		{120, "1-2 min"},
		{121, "2-5 min"},
		{300, "2-5 min"},
		{301, "5-10 min"},
		{600, "5-10 min"},
		{601, "10-30 min"},
		{1800, "10-30 min"},
		{1801, "30-60 min"},
		{3600, "30-60 min"},
		{3601, "60+ min"},
		{4000, "60+ min"},
		{1e9, "60+ min"},
	}

	for _, tt := range tests {
		if got := Categorize(tt.seconds); got != tt.expected {
			t.Errorf("Categorize(%v) = %q, want %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestCategorizeUnrepresentable(t *testing.T) {

	for _, s := range []float64{-1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Categorize(s); got != UnknownBucket {
			t.Errorf("Categorize(%v) = %q, want %q", s, got, UnknownBucket)
		}
	}
}

func TestBucketCatalogCoverage(t *testing.T) {

	catalog := BucketCatalog()
	if len(catalog) == 0 {
		t.Fatal("catalog is empty")
	}

	if catalog[0].MinSeconds != 0 {
		t.Errorf("catalog must start at 0, starts at %d", catalog[0].MinSeconds)
	}

	for i := 1; i < len(catalog); i++ {
		prev, cur := catalog[i-1], catalog[i]
		if prev.MaxSeconds < 0 {
			t.Errorf("only the final bucket may be unbounded, %q is not last", prev.Label)
		}
		if cur.MinSeconds != prev.MaxSeconds+1 {
			t.Errorf("gap or overlap between %q (max %d) and %q (min %d)",
				prev.Label, prev.MaxSeconds, cur.Label, cur.MinSeconds)
		}
	}

	if last := catalog[len(catalog)-1]; last.MaxSeconds != -1 {
		t.Errorf("final bucket %q must be unbounded", last.Label)
	}

	// Every non-negative duration lands in exactly one bucket.
	for s := 0; s <= 5000; s++ {
		matches := 0
		for _, b := range catalog {
			if s >= b.MinSeconds && (b.MaxSeconds < 0 || s <= b.MaxSeconds) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("duration %d matches %d buckets, want exactly 1", s, matches)
		}
	}
}

func TestCost(t *testing.T) {

	tests := []struct {
		minutes  float64
		rate     float64
		expected float64
	}{
		{0, 0.006, 0},
		{10, 0.006, 0.06},
		{1.5, 2, 3},
	}

	for _, tt := range tests {
		if got := Cost(tt.minutes, tt.rate); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Cost(%v, %v) = %v, want %v", tt.minutes, tt.rate, got, tt.expected)
		}
	}
}
