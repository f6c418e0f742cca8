// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/vocallytics/vocallytics/internal/models"
)

func TestSummarizeDistributionScenario(t *testing.T) {

	// Three events with durations 10s, 45s, 4000s: one per bucket
	// "0-30 sec", "31-60 sec", "60+ min"; one long file, long share 1/3.
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	events := []models.UsageEvent{
		{ID: "e1", UserID: "u1", CreatedAt: at, DurationSeconds: 10},
		{ID: "e2", UserID: "u1", CreatedAt: at, DurationSeconds: 45},
		{ID: "e3", UserID: "u2", CreatedAt: at, DurationSeconds: 4000},
	}

	dist := SummarizeDistribution(events, 0.1)

	if dist.TotalEvents != 3 {
		t.Fatalf("TotalEvents = %d, want 3", dist.TotalEvents)
	}
	if dist.LongFileCount != 1 {
		t.Errorf("LongFileCount = %d, want 1", dist.LongFileCount)
	}
	if math.Abs(dist.LongFilePct-1.0/3.0) > 1e-12 {
		t.Errorf("LongFilePct = %v, want 1/3", dist.LongFilePct)
	}

	counts := make(map[string]models.BucketStats, len(dist.Buckets))
	for _, b := range dist.Buckets {
		counts[b.Bucket] = b
	}

	for bucket, want := range map[string]int{
		"0-30 sec":  1,
		"31-60 sec": 1,
		"60+ min":   1,
		"1-2 min":   0,
		"10-30 min": 0,
	} {
		if got := counts[bucket].EventCount; got != want {
			t.Errorf("bucket %q count = %d, want %d", bucket, got, want)
		}
	}

	long := counts["60+ min"]
	if long.UniqueUsers != 1 {
		t.Errorf("60+ min unique users = %d, want 1", long.UniqueUsers)
	}
	if math.Abs(long.TotalAudioMinutes-4000.0/60) > 1e-9 {
		t.Errorf("60+ min minutes = %v, want %v", long.TotalAudioMinutes, 4000.0/60)
	}
	if math.Abs(long.AvgDurationSeconds-4000) > 1e-9 {
		t.Errorf("60+ min avg duration = %v, want 4000", long.AvgDurationSeconds)
	}
	if math.Abs(long.TotalCost-Cost(4000.0/60, 0.1)) > 1e-9 {
		t.Errorf("60+ min cost = %v, want %v", long.TotalCost, Cost(4000.0/60, 0.1))
	}
}

func TestSummarizeDistributionPercentages(t *testing.T) {

	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	events := []models.UsageEvent{
		{ID: "e1", UserID: "u1", CreatedAt: at, DurationSeconds: 20},
		{ID: "e2", UserID: "u2", CreatedAt: at, DurationSeconds: 25},
		{ID: "e3", UserID: "u3", CreatedAt: at, DurationSeconds: 50},
		{ID: "e4", UserID: "u4", CreatedAt: at, DurationSeconds: 55},
	}

	dist := SummarizeDistribution(events, 1.0)
	var short models.BucketStats
	for _, b := range dist.Buckets {
		if b.Bucket == "0-30 sec" {
			short = b
		}
	}

	if math.Abs(short.EventPct-50) > 1e-9 {
		t.Errorf("0-30 sec event pct = %v, want 50", short.EventPct)
	}

	var pctSum float64
	for _, b := range dist.Buckets {
		pctSum += b.EventPct
	}
	if math.Abs(pctSum-100) > 1e-9 {
		t.Errorf("event percentages sum to %v, want 100", pctSum)
	}
}

func TestSummarizeDistributionEmptyInput(t *testing.T) {

	// Zero denominators resolve to 0, never a division error.
	dist := SummarizeDistribution(nil, 0.1)

	if dist.TotalEvents != 0 || dist.TotalCost != 0 || dist.LongFilePct != 0 {
		t.Errorf("empty input must produce all-zero totals, got %+v", dist)
	}
	if len(dist.Buckets) != len(BucketCatalog()) {
		t.Fatalf("expected a row per catalog bucket, got %d", len(dist.Buckets))
	}
	for _, b := range dist.Buckets {
		if b.EventCount != 0 || b.EventPct != 0 || b.CostPct != 0 || b.AvgDurationSeconds != 0 {
			t.Errorf("bucket %q not zeroed: %+v", b.Bucket, b)
		}
	}
}

func TestSummarizeDistributionZeroRate(t *testing.T) {

	// A free tier (rate 0) zeroes every cost but must not break cost
	// percentage math.
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	events := []models.UsageEvent{
		{ID: "e1", UserID: "u1", CreatedAt: at, DurationSeconds: 100},
	}

	dist := SummarizeDistribution(events, 0)
	if dist.TotalCost != 0 {
		t.Errorf("TotalCost = %v, want 0", dist.TotalCost)
	}
	for _, b := range dist.Buckets {
		if b.CostPct != 0 {
			t.Errorf("bucket %q cost pct = %v, want 0", b.Bucket, b.CostPct)
		}
	}
}
