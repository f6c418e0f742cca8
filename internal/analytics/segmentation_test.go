// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package analytics

import (
	"testing"
	"time"

	"github.com/vocallytics/vocallytics/internal/models"
)

func TestActivitySegmentBoundaries(t *testing.T) {

	th := DefaultThresholds()
	tests := []struct {
		activeDays int
		expected   string
	}{
		{0, "One-time"},
		{1, "One-time"},
		{2, "Casual"},
		{3, "Casual"},
		{4, "Light"},
		{7, "Light"},
		{8, "Moderate"},
		{14, "Moderate"},
		{15, "Regular"},
		{29, "Regular"},
		{30, "Power User"},
		{400, "Power User"},
	}

	for _, tt := range tests {
		if got := ActivitySegment(tt.activeDays, th); got != tt.expected {
			t.Errorf("ActivitySegment(%d) = %q, want %q", tt.activeDays, got, tt.expected)
		}
	}
}

func TestRecencyStatusRuleOrder(t *testing.T) {

	th := DefaultThresholds()
	tests := []struct {
		name       string
		sinceReg   int
		sinceLast  int
		activeDays int
		expected   string
	}{
		// Registration recency wins over usage recency: registered 3
		// days ago, used yesterday, still "New".
		{"new beats active", 3, 1, 2, "New"},
		{"new at boundary", 7, 20, 1, "New"},
		{"active", 30, 7, 5, "Active"},
		{"cooling lower edge", 30, 8, 5, "Cooling"},
		{"cooling upper edge", 30, 14, 5, "Cooling"},
		{"churned one-timer", 30, 15, 1, "Churned one-timer"},
		{"churned returning", 30, 15, 2, "Churned returning"},
		{"churned returning long gap", 400, 300, 10, "Churned returning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecencyStatus(tt.sinceReg, tt.sinceLast, tt.activeDays, th)
			if got != tt.expected {
				t.Errorf("RecencyStatus(%d, %d, %d) = %q, want %q",
					tt.sinceReg, tt.sinceLast, tt.activeDays, got, tt.expected)
			}
		})
	}
}

func TestCostSegmentBoundaries(t *testing.T) {

	th := DefaultThresholds()
	tests := []struct {
		cost     float64
		expected string
	}{
		{0, "Minimal"},
		{4.99, "Minimal"},
		{5, "Low"},
		{19.99, "Low"},
		{20, "Medium"},
		{99.99, "Medium"},
		{100, "High"},
		{2500, "High"},
	}

	for _, tt := range tests {
		if got := CostSegment(tt.cost, th); got != tt.expected {
			t.Errorf("CostSegment(%v) = %q, want %q", tt.cost, got, tt.expected)
		}
	}
}

func TestCostThresholdsAreConfiguration(t *testing.T) {

	th := DefaultThresholds()
	th.CostHigh = 1000
	th.CostMedium = 200
	th.CostLow = 50

	if got := CostSegment(100, th); got != "Low" {
		t.Errorf("CostSegment(100) with raised thresholds = %q, want %q", got, "Low")
	}
}

func TestSegmentDeterminism(t *testing.T) {

	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	agg := models.UserAggregate{
		UserID:       "u1",
		RegisteredAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ActiveDays:   9,
		LastUsage:    time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		Cost:         21.5,
	}

	first := Segment(agg, DefaultThresholds(), asOf)
	second := Segment(agg, DefaultThresholds(), asOf)
	if first != second {
		t.Errorf("identical inputs produced different segments: %+v vs %+v", first, second)
	}

	if first.ActivitySegment != "Moderate" {
		t.Errorf("ActivitySegment = %q, want %q", first.ActivitySegment, "Moderate")
	}
	if first.CostSegment != "Medium" {
		t.Errorf("CostSegment = %q, want %q", first.CostSegment, "Medium")
	}
	if first.DaysSinceRegistration != 92 {
		t.Errorf("DaysSinceRegistration = %d, want 92", first.DaysSinceRegistration)
	}
	if first.DaysSinceLastUsage != 12 {
		t.Errorf("DaysSinceLastUsage = %d, want 12", first.DaysSinceLastUsage)
	}
	if first.RecencyStatus != "Cooling" {
		t.Errorf("RecencyStatus = %q, want %q", first.RecencyStatus, "Cooling")
	}
}
