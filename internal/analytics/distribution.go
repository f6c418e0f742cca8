// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"github.com/vocallytics/vocallytics/internal/models"
)

// SummarizeDistribution aggregates events into the duration bucket
// distribution table.
//
// Every catalog bucket gets a row even when empty, in catalog order.
// Events categorized as Unknown are never counted in bucket totals.
// Percentages resolve to 0 when their denominator is 0; an empty event
// set produces an all-zero table, not an error.
func SummarizeDistribution(events []models.UsageEvent, ratePerMinute float64) models.DurationDistribution {
	type bucketAcc struct {
		count    int
		users    map[string]struct{}
		seconds  float64
		minutes  float64
	}

	acc := make(map[string]*bucketAcc, len(durationBuckets))
	for _, b := range durationBuckets {
		acc[b.Label] = &bucketAcc{users: make(map[string]struct{})}
	}

	dist := models.DurationDistribution{}
	for _, e := range events {
		label := Categorize(e.DurationSeconds)
		a, ok := acc[label]
		if !ok {
			continue
		}
		a.count++
		a.users[e.UserID] = struct{}{}
		a.seconds += e.DurationSeconds
		a.minutes += e.DurationSeconds / 60

		dist.TotalEvents++
		dist.TotalAudioMinutes += e.DurationSeconds / 60
		if IsLongFile(e.DurationSeconds) {
			dist.LongFileCount++
		}
	}
	dist.TotalCost = Cost(dist.TotalAudioMinutes, ratePerMinute)

	dist.Buckets = make([]models.BucketStats, 0, len(durationBuckets))
	for _, b := range durationBuckets {
		a := acc[b.Label]
		row := models.BucketStats{
			Bucket:            b.Label,
			MinSeconds:        b.MinSeconds,
			MaxSeconds:        b.MaxSeconds,
			EventCount:        a.count,
			UniqueUsers:       len(a.users),
			TotalAudioMinutes: a.minutes,
			TotalCost:         Cost(a.minutes, ratePerMinute),
		}
		if dist.TotalEvents > 0 {
			row.EventPct = float64(a.count) / float64(dist.TotalEvents) * 100
		}
		if dist.TotalCost > 0 {
			row.CostPct = row.TotalCost / dist.TotalCost * 100
		}
		if a.count > 0 {
			row.AvgDurationSeconds = a.seconds / float64(a.count)
		}
		dist.Buckets = append(dist.Buckets, row)
	}

	if dist.TotalEvents > 0 {
		dist.LongFilePct = float64(dist.LongFileCount) / float64(dist.TotalEvents)
	}

	return dist
}
