// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// This file contains weekly cohort retention models. A cohort is the set
// of users registered in the same ISO calendar week, tracked as a
// fixed-size group over later weeks.
package models

import "time"

// CohortRow is one row of the cohort retention matrix.
type CohortRow struct {
	// CohortWeek is the ISO week label of registration (YYYY-Www)
	CohortWeek string `json:"cohort_week"`

	// CohortStart is the Monday (UTC) of the cohort week
	CohortStart time.Time `json:"cohort_start"`

	// CohortSize is the number of users registered in this week. It is
	// fixed at grouping time and includes users with zero events:
	// cohort size is a registration count, not an activity count.
	CohortSize int `json:"cohort_size"`

	// Retention holds one cell per relative week offset, index 0 being
	// the registration week itself. A cell is the fraction of cohort
	// members active in that week, in [0,1]. A nil cell means the target
	// week lies beyond the last week observed in the dataset ("not yet
	// observed") and must not be read as 0% retention.
	Retention []*float64 `json:"retention"`
}

// CohortMatrix is the full retention matrix plus its week axis.
type CohortMatrix struct {
	// Horizon is the highest relative week offset tracked (W+0..W+Horizon)
	Horizon int `json:"horizon"`

	// Weeks is the dense chronological axis of all weeks spanned by the
	// dataset, earliest registration or activity week through the latest
	Weeks []string `json:"weeks"`

	// Cohorts are the matrix rows ordered by cohort week
	Cohorts []CohortRow `json:"cohorts"`
}
