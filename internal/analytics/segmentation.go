// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"time"

	"github.com/vocallytics/vocallytics/internal/models"
)

// Each segmentation axis is an explicit ordered rule list evaluated
// first-match-wins. The ranges are not disjoint by construction; order
// is what resolves the overlap, so the rules must never be reordered or
// turned into independent conditionals.

// ActivitySegment classifies usage volume by distinct active days.
func ActivitySegment(activeDays int, t SegmentThresholds) string {
	rules := []struct {
		minDays int
		label   string
	}{
		{t.ActivityPowerUser, "Power User"},
		{t.ActivityRegular, "Regular"},
		{t.ActivityModerate, "Moderate"},
		{t.ActivityLight, "Light"},
		{t.ActivityCasual, "Casual"},
	}
	for _, r := range rules {
		if activeDays >= r.minDays {
			return r.label
		}
	}
	return "One-time"
}

// RecencyStatus classifies engagement freshness. Registration recency
// takes priority: a user who registered three days ago and used the
// service yesterday is "New", not "Active".
func RecencyStatus(daysSinceRegistration, daysSinceLastUsage, activeDays int, t SegmentThresholds) string {
	rules := []struct {
		match func() bool
		label string
	}{
		{func() bool { return daysSinceRegistration <= t.RecencyNewDays }, "New"},
		{func() bool { return daysSinceLastUsage <= t.RecencyActiveDays }, "Active"},
		{func() bool { return daysSinceLastUsage <= t.RecencyCoolingDays }, "Cooling"},
		{func() bool { return activeDays == 1 }, "Churned one-timer"},
	}
	for _, r := range rules {
		if r.match() {
			return r.label
		}
	}
	return "Churned returning"
}

// CostSegment classifies derived spend.
func CostSegment(cost float64, t SegmentThresholds) string {
	rules := []struct {
		minCost float64
		label   string
	}{
		{t.CostHigh, "High"},
		{t.CostMedium, "Medium"},
		{t.CostLow, "Low"},
	}
	for _, r := range rules {
		if cost >= r.minCost {
			return r.label
		}
	}
	return "Minimal"
}

// Segment assigns one label per axis to a user's aggregate. All recency
// math is measured against asOf, an explicit report reference instant,
// never a clock read, so segmentation is deterministic and idempotent.
//
// Only users with at least one event are segmented; the caller enforces
// that.
func Segment(agg models.UserAggregate, t SegmentThresholds, asOf time.Time) models.UserSegment {
	daysSinceRegistration := daysBetween(agg.RegisteredAt, asOf)
	daysSinceLastUsage := daysBetween(agg.LastUsage, asOf)

	return models.UserSegment{
		UserID:                agg.UserID,
		ExternalID:            agg.ExternalID,
		ActivitySegment:       ActivitySegment(agg.ActiveDays, t),
		RecencyStatus:         RecencyStatus(daysSinceRegistration, daysSinceLastUsage, agg.ActiveDays, t),
		CostSegment:           CostSegment(agg.Cost, t),
		DaysSinceRegistration: daysSinceRegistration,
		DaysSinceLastUsage:    daysSinceLastUsage,
	}
}

// daysBetween returns the whole days from earlier to later, floored at 0.
func daysBetween(earlier, later time.Time) int {
	d := int(later.Sub(earlier).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
