// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vocallytics/vocallytics/internal/metrics"
	"github.com/vocallytics/vocallytics/internal/models"
)

// Snapshot materializes the full users and events collections the
// analytics engine operates on. The result is a point-in-time copy;
// later ingests do not mutate it.
func (db *DB) Snapshot(ctx context.Context) (models.Snapshot, error) {
	snap := models.Snapshot{}

	users, err := db.queryUsers(ctx)
	if err != nil {
		return snap, err
	}
	events, err := db.queryEvents(ctx)
	if err != nil {
		return snap, err
	}

	snap.Users = users
	snap.Events = events
	return snap, nil
}

func (db *DB) queryUsers(ctx context.Context) ([]models.User, error) {
	defer metrics.TimeDBQuery("select", "users")()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, external_id, registered_at FROM users ORDER BY id`)
	if err != nil {
		metrics.DBQueryErrors.WithLabelValues("select", "users").Inc()
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.ExternalID, &u.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		u.RegisteredAt = u.RegisteredAt.UTC()
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

func (db *DB) queryEvents(ctx context.Context) ([]models.UsageEvent, error) {
	defer metrics.TimeDBQuery("select", "usage_events")()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, created_at, duration_seconds, model_used,
		        processing_time_seconds, transcription_length
		 FROM usage_events
		 ORDER BY user_id, created_at`)
	if err != nil {
		metrics.DBQueryErrors.WithLabelValues("select", "usage_events").Inc()
		return nil, fmt.Errorf("query usage events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []models.UsageEvent{}
	for rows.Next() {
		var e models.UsageEvent
		var model sql.NullString
		var processing sql.NullFloat64
		var length sql.NullInt64
		if err := rows.Scan(&e.ID, &e.UserID, &e.CreatedAt, &e.DurationSeconds,
			&model, &processing, &length); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		if model.Valid {
			m := model.String
			e.ModelUsed = &m
		}
		e.ProcessingTimeSeconds = processing.Float64
		e.TranscriptionLength = int(length.Int64)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}
	return events, nil
}
