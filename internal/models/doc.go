// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// Package models provides data structures for the Vocallytics application.
//
// The package is organized by concern:
//   - usage.go: raw usage records (users, transcription events) and snapshots
//   - analytics_segmentation.go: per-user segment labels
//   - analytics_negativeux.go: negative-experience detection records
//   - analytics_cohort.go: weekly cohort retention matrix
//   - analytics_distribution.go: duration bucket distribution
//   - report.go: the combined usage report handed to renderers
//
// All structs are plain data carriers with JSON tags for API serialization.
// Derived analytics structures are produced by internal/analytics and are
// never written back to storage.
package models
