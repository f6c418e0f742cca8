// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// This file contains duration distribution models: per-bucket event and
// cost aggregates over the fixed audio-length bucket catalog.
package models

// BucketStats is one row of the duration distribution table.
type BucketStats struct {
	// Bucket is the catalog label, e.g. "0-30 sec"
	Bucket string `json:"bucket"`

	// MinSeconds is the inclusive lower bound of the bucket range
	MinSeconds int `json:"min_seconds"`

	// MaxSeconds is the inclusive upper bound; -1 marks the final
	// unbounded bucket
	MaxSeconds int `json:"max_seconds"`

	// EventCount is the number of events whose duration fell in this bucket
	EventCount int `json:"event_count"`

	// EventPct is EventCount as a percentage of all events (0 when there
	// are no events)
	EventPct float64 `json:"event_pct"`

	// UniqueUsers is the number of distinct users with events in this bucket
	UniqueUsers int `json:"unique_users"`

	// TotalAudioMinutes is the summed audio duration in this bucket
	TotalAudioMinutes float64 `json:"total_audio_minutes"`

	// TotalCost is TotalAudioMinutes priced at the configured rate
	TotalCost float64 `json:"total_cost"`

	// CostPct is TotalCost as a percentage of all cost (0 when total cost is 0)
	CostPct float64 `json:"cost_pct"`

	// AvgDurationSeconds is the mean event duration within the bucket
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
}

// DurationDistribution is the complete distribution table.
type DurationDistribution struct {
	// Buckets holds one row per catalog bucket, in catalog order
	Buckets []BucketStats `json:"buckets"`

	// TotalEvents is the number of events counted across all buckets
	TotalEvents int `json:"total_events"`

	// TotalAudioMinutes is the summed audio duration across all buckets
	TotalAudioMinutes float64 `json:"total_audio_minutes"`

	// TotalCost is the summed cost across all buckets
	TotalCost float64 `json:"total_cost"`

	// LongFileCount is the number of events longer than the long-file
	// line (10 minutes)
	LongFileCount int `json:"long_file_count"`

	// LongFilePct is LongFileCount as a fraction of TotalEvents in [0,1]
	// (0 when there are no events)
	LongFilePct float64 `json:"long_file_pct"`
}
