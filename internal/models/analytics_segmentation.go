// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// This file contains multi-dimensional user segmentation models. Each user
// with at least one event receives one label per axis: activity volume,
// engagement recency, and spend.
package models

// UserSegment is the per-user segmentation result.
//
// Labels are assigned by ordered decision tables (first matching rule
// wins), so every user gets exactly one label per axis.
type UserSegment struct {
	// UserID is the internal user identifier
	UserID string `json:"user_id"`

	// ExternalID is the platform identity, carried for report rendering
	ExternalID string `json:"external_id"`

	// ActivitySegment classifies usage volume by distinct active days:
	// "Power User", "Regular", "Moderate", "Light", "Casual", "One-time"
	ActivitySegment string `json:"activity_segment"`

	// RecencyStatus classifies engagement freshness relative to the
	// report's as-of instant: "New", "Active", "Cooling",
	// "Churned one-timer", "Churned returning"
	RecencyStatus string `json:"recency_status"`

	// CostSegment classifies derived spend: "High", "Medium", "Low", "Minimal"
	CostSegment string `json:"cost_segment"`

	// DaysSinceRegistration is measured against the report as-of instant
	DaysSinceRegistration int `json:"days_since_registration"`

	// DaysSinceLastUsage is measured against the report as-of instant
	DaysSinceLastUsage int `json:"days_since_last_usage"`
}
