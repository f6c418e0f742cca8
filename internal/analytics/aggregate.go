// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"sort"
	"time"

	"github.com/vocallytics/vocallytics/internal/models"
)

// aggregation is the validated, per-user view of a snapshot that the
// downstream computations consume.
type aggregation struct {
	// byUser holds one aggregate per snapshot user, including users with
	// zero events
	byUser map[string]*models.UserAggregate

	// eventsByUser holds each user's valid events sorted ascending by
	// CreatedAt. Users with zero events have no entry.
	eventsByUser map[string][]models.UsageEvent

	// events holds every valid event, unordered
	events []models.UsageEvent

	// problems records events excluded because including them would have
	// corrupted aggregates
	problems []error
}

// aggregate validates a snapshot and derives per-user statistics.
//
// Events referencing unknown users or carrying invalid values are
// excluded from every aggregate and reported in problems; they are never
// silently dropped. An empty snapshot is not an error.
func aggregate(snap models.Snapshot, ratePerMinute float64) *aggregation {
	agg := &aggregation{
		byUser:       make(map[string]*models.UserAggregate, len(snap.Users)),
		eventsByUser: make(map[string][]models.UsageEvent),
	}

	for _, u := range snap.Users {
		agg.byUser[u.ID] = &models.UserAggregate{
			UserID:       u.ID,
			ExternalID:   u.ExternalID,
			RegisteredAt: u.RegisteredAt,
		}
	}

	activeDates := make(map[string]map[string]struct{})

	for _, e := range snap.Events {
		ua, ok := agg.byUser[e.UserID]
		if !ok {
			agg.problems = append(agg.problems, &MissingDataError{EventID: e.ID, UserID: e.UserID})
			continue
		}
		if e.DurationSeconds < 0 {
			agg.problems = append(agg.problems, &InvalidValueError{
				EventID: e.ID, Field: "duration_seconds", Reason: "negative duration",
			})
			continue
		}
		if e.CreatedAt.IsZero() {
			agg.problems = append(agg.problems, &InvalidValueError{
				EventID: e.ID, Field: "created_at", Reason: "missing timestamp",
			})
			continue
		}

		ua.TranscriptionCount++
		ua.TotalAudioMinutes += e.DurationSeconds / 60

		if ua.FirstUsage.IsZero() || e.CreatedAt.Before(ua.FirstUsage) {
			ua.FirstUsage = e.CreatedAt
		}
		if e.CreatedAt.After(ua.LastUsage) {
			ua.LastUsage = e.CreatedAt
		}

		dates, ok := activeDates[e.UserID]
		if !ok {
			dates = make(map[string]struct{})
			activeDates[e.UserID] = dates
		}
		dates[e.CreatedAt.UTC().Format(time.DateOnly)] = struct{}{}

		agg.eventsByUser[e.UserID] = append(agg.eventsByUser[e.UserID], e)
		agg.events = append(agg.events, e)
	}

	for id, ua := range agg.byUser {
		ua.ActiveDays = len(activeDates[id])
		ua.Cost = Cost(ua.TotalAudioMinutes, ratePerMinute)
	}

	// Intra-user ordering is required by recovery detection and the
	// first-event-negative flag.
	for _, events := range agg.eventsByUser {
		sort.Slice(events, func(i, j int) bool {
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		})
	}

	return agg
}

// activeUserIDs returns the IDs of users with at least one valid event,
// sorted for deterministic report ordering.
func (a *aggregation) activeUserIDs() []string {
	ids := make([]string, 0, len(a.eventsByUser))
	for id := range a.eventsByUser {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
