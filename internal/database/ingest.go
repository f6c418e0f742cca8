// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package database

import (
	"context"
	"fmt"

	"github.com/vocallytics/vocallytics/internal/metrics"
	"github.com/vocallytics/vocallytics/internal/models"
)

// UpsertUsers inserts or replaces user records in one transaction and
// returns the number written.
func (db *DB) UpsertUsers(ctx context.Context, users []models.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}
	defer metrics.TimeDBQuery("upsert", "users")()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin users transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO users (id, external_id, registered_at) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare users upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, u := range users {
		if u.ID == "" {
			return 0, fmt.Errorf("user with empty id")
		}
		if _, err := stmt.ExecContext(ctx, u.ID, u.ExternalID, u.RegisteredAt.UTC()); err != nil {
			metrics.DBQueryErrors.WithLabelValues("upsert", "users").Inc()
			return 0, fmt.Errorf("upsert user %s: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit users upsert: %w", err)
	}

	metrics.IngestedUsersTotal.Add(float64(len(users)))
	return len(users), nil
}

// InsertEvents inserts or replaces usage events in one transaction and
// returns the number written. Events are immutable in the domain; the
// replace semantics only make re-ingesting an export idempotent.
func (db *DB) InsertEvents(ctx context.Context, events []models.UsageEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}
	defer metrics.TimeDBQuery("insert", "usage_events")()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin events transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO usage_events
		 (id, user_id, created_at, duration_seconds, model_used, processing_time_seconds, transcription_length)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare events insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range events {
		if e.ID == "" {
			return 0, fmt.Errorf("event with empty id")
		}
		var model any
		if e.ModelUsed != nil {
			model = *e.ModelUsed
		}
		if _, err := stmt.ExecContext(ctx,
			e.ID, e.UserID, e.CreatedAt.UTC(), e.DurationSeconds,
			model, e.ProcessingTimeSeconds, e.TranscriptionLength); err != nil {
			metrics.DBQueryErrors.WithLabelValues("insert", "usage_events").Inc()
			return 0, fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit events insert: %w", err)
	}

	metrics.IngestedEventsTotal.Add(float64(len(events)))
	return len(events), nil
}
