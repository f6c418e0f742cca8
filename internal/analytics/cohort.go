// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/vocallytics/vocallytics/internal/models"
)

// weekStart returns the Monday 00:00 UTC of the ISO week containing t.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -daysSinceMonday)
}

// weekLabel returns the ISO week label for t, e.g. "2026-W02".
func weekLabel(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ComputeCohorts groups users into weekly registration cohorts and
// computes the retention matrix.
//
// The week axis is a dense, explicitly-constructed chronological sequence
// spanning the earliest registration or activity week through the latest,
// with an index per label. That makes the "not yet observed" boundary a
// simple index-range test: a cell whose target index falls past the end
// of the axis is nil, never 0, so recently-registered cohorts do not show
// a false retention decline.
//
// Cohort size is fixed at grouping time and counts every registrant,
// including users with zero events. A user contributes to a cell iff they
// produced at least one event in the target week; the matrix does not
// distinguish a week of inactivity from permanent churn.
func ComputeCohorts(users []models.User, eventsByUser map[string][]models.UsageEvent, horizon int) models.CohortMatrix {
	matrix := models.CohortMatrix{
		Horizon: horizon,
		Weeks:   []string{},
		Cohorts: []models.CohortRow{},
	}
	if len(users) == 0 {
		return matrix
	}

	// Per-user set of distinct active weeks.
	activeWeeks := make(map[string]map[string]struct{}, len(eventsByUser))
	var earliest, latest time.Time
	observe := func(t time.Time) {
		w := weekStart(t)
		if earliest.IsZero() || w.Before(earliest) {
			earliest = w
		}
		if latest.IsZero() || w.After(latest) {
			latest = w
		}
	}

	for id, events := range eventsByUser {
		weeks := make(map[string]struct{})
		for _, e := range events {
			weeks[weekLabel(e.CreatedAt)] = struct{}{}
			observe(e.CreatedAt)
		}
		activeWeeks[id] = weeks
	}
	for _, u := range users {
		observe(u.RegisteredAt)
	}

	// Dense week axis with index lookup.
	weekIndex := make(map[string]int)
	for w := earliest; !w.After(latest); w = w.AddDate(0, 0, 7) {
		label := weekLabel(w)
		weekIndex[label] = len(matrix.Weeks)
		matrix.Weeks = append(matrix.Weeks, label)
	}

	// Group registrants by cohort week.
	type cohort struct {
		start   time.Time
		members []string
	}
	cohorts := make(map[string]*cohort)
	for _, u := range users {
		label := weekLabel(u.RegisteredAt)
		c, ok := cohorts[label]
		if !ok {
			c = &cohort{start: weekStart(u.RegisteredAt)}
			cohorts[label] = c
		}
		c.members = append(c.members, u.ID)
	}

	for label, c := range cohorts {
		row := models.CohortRow{
			CohortWeek:  label,
			CohortStart: c.start,
			CohortSize:  len(c.members),
			Retention:   make([]*float64, horizon+1),
		}
		base := weekIndex[label]
		for offset := 0; offset <= horizon; offset++ {
			target := base + offset
			if target >= len(matrix.Weeks) {
				// Not yet observed: the target week is beyond the
				// dataset, so the cell stays nil.
				continue
			}
			targetWeek := matrix.Weeks[target]
			active := 0
			for _, id := range c.members {
				if _, ok := activeWeeks[id][targetWeek]; ok {
					active++
				}
			}
			fraction := float64(active) / float64(row.CohortSize)
			row.Retention[offset] = &fraction
		}
		matrix.Cohorts = append(matrix.Cohorts, row)
	}

	sort.Slice(matrix.Cohorts, func(i, j int) bool {
		return matrix.Cohorts[i].CohortStart.Before(matrix.Cohorts[j].CohortStart)
	})

	return matrix
}
