// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package database

import "context"

// schemaStatements bootstrap the store. DuckDB executes them on every
// open; IF NOT EXISTS keeps that idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR PRIMARY KEY,
		external_id VARCHAR NOT NULL,
		registered_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS usage_events (
		id VARCHAR PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		model_used VARCHAR,
		processing_time_seconds DOUBLE,
		transcription_length INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_usage_events_user ON usage_events (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_usage_events_created ON usage_events (created_at)`,
}

// initSchema creates tables and indexes if they do not exist.
func (db *DB) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
