// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package models

import "time"

// UsageEvent represents one transcription request made by a user.
//
// Events are immutable once recorded. The analytics engine only ever
// reads them; it never writes back.
type UsageEvent struct {
	// ID is the unique event identifier
	ID string `json:"id"`

	// UserID is the owning user (many events per user)
	UserID string `json:"user_id"`

	// CreatedAt is the UTC timestamp when the request was received
	CreatedAt time.Time `json:"created_at"`

	// DurationSeconds is the audio length in seconds (never negative)
	DurationSeconds float64 `json:"duration_seconds"`

	// ModelUsed is the transcription model that served the request.
	// Nil means processing failed to select or record a model, which is
	// itself a service-quality failure signal.
	ModelUsed *string `json:"model_used"`

	// ProcessingTimeSeconds is informational only
	ProcessingTimeSeconds float64 `json:"processing_time_seconds,omitempty"`

	// TranscriptionLength is the produced transcript length in characters,
	// informational only
	TranscriptionLength int `json:"transcription_length,omitempty"`
}

// User represents one end user of the transcription service.
type User struct {
	// ID is the internal user identifier
	ID string `json:"id"`

	// ExternalID is the platform identity (e.g. messenger account ID)
	ExternalID string `json:"external_id"`

	// RegisteredAt is the UTC registration timestamp
	RegisteredAt time.Time `json:"registered_at"`
}

// Snapshot is an immutable, already-materialized view of all users and
// events the analytics engine operates on. The data-access layer builds
// it; the engine never queries storage itself.
type Snapshot struct {
	Users  []User       `json:"users"`
	Events []UsageEvent `json:"events"`
}

// UserAggregate holds per-user statistics derived from a snapshot.
// These fields are computed, never stored.
type UserAggregate struct {
	// UserID is the internal user identifier
	UserID string `json:"user_id"`

	// ExternalID is the platform identity
	ExternalID string `json:"external_id"`

	// RegisteredAt is the UTC registration timestamp
	RegisteredAt time.Time `json:"registered_at"`

	// TranscriptionCount is the number of events the user produced
	TranscriptionCount int `json:"transcription_count"`

	// TotalAudioMinutes is the summed audio duration in minutes
	TotalAudioMinutes float64 `json:"total_audio_minutes"`

	// ActiveDays is the count of distinct calendar dates (UTC) with at
	// least one event
	ActiveDays int `json:"active_days"`

	// FirstUsage is the earliest event timestamp (zero if no events)
	FirstUsage time.Time `json:"first_usage"`

	// LastUsage is the latest event timestamp (zero if no events)
	LastUsage time.Time `json:"last_usage"`

	// Cost is TotalAudioMinutes priced at the configured per-minute rate
	Cost float64 `json:"cost"`
}
