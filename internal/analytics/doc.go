// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// Package analytics is the derivation engine of Vocallytics: pure
// computations that turn an immutable snapshot of users and transcription
// events into derived tables (user segments, negative-experience records,
// a weekly cohort retention matrix, and a duration distribution).
//
// The engine is a single-threaded, synchronous batch computation. It
// performs no I/O, reads no clock (the report-as-of instant is an
// explicit input), and never mutates its inputs, so identical snapshot
// and configuration always produce an identical report.
//
// Data flow:
//
//	snapshot -> aggregation (per-user stats, validation)
//	         -> negative-experience detection (per user, time-ordered)
//	         -> segmentation (ordered decision tables per axis)
//	         -> cohort retention (dense week axis, fixed horizon)
//	         -> duration distribution (fixed bucket catalog)
//	         -> models.UsageReport
package analytics
