// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package database

import (
	"context"
	"testing"
	"time"

	"github.com/vocallytics/vocallytics/internal/config"
	"github.com/vocallytics/vocallytics/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(config.DatabaseConfig{
		Path:         ":memory:",
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestIngestAndSnapshotRoundTrip(t *testing.T) {

	db := testDB(t)
	ctx := context.Background()

	reg := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	users := []models.User{
		{ID: "u1", ExternalID: "ext-1", RegisteredAt: reg},
		{ID: "u2", ExternalID: "ext-2", RegisteredAt: reg.AddDate(0, 0, 7)},
	}
	small := "small"
	events := []models.UsageEvent{
		{ID: "e1", UserID: "u1", CreatedAt: reg.Add(time.Hour), DurationSeconds: 45, ModelUsed: &small},
		{ID: "e2", UserID: "u1", CreatedAt: reg.Add(2 * time.Hour), DurationSeconds: 700, ModelUsed: nil},
	}

	if n, err := db.UpsertUsers(ctx, users); err != nil || n != 2 {
		t.Fatalf("UpsertUsers = (%d, %v), want (2, nil)", n, err)
	}
	if n, err := db.InsertEvents(ctx, events); err != nil || n != 2 {
		t.Fatalf("InsertEvents = (%d, %v), want (2, nil)", n, err)
	}

	snap, err := db.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if len(snap.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(snap.Users))
	}
	if !snap.Users[0].RegisteredAt.Equal(reg) {
		t.Errorf("RegisteredAt = %v, want %v", snap.Users[0].RegisteredAt, reg)
	}

	if len(snap.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(snap.Events))
	}
	if snap.Events[0].ModelUsed == nil || *snap.Events[0].ModelUsed != "small" {
		t.Errorf("event e1 model = %v, want small", snap.Events[0].ModelUsed)
	}
	if snap.Events[1].ModelUsed != nil {
		t.Errorf("event e2 model = %v, want nil", *snap.Events[1].ModelUsed)
	}
}

func TestUpsertIsIdempotent(t *testing.T) {

	db := testDB(t)
	ctx := context.Background()

	u := models.User{ID: "u1", ExternalID: "ext-1", RegisteredAt: time.Now().UTC()}
	for i := 0; i < 2; i++ {
		if _, err := db.UpsertUsers(ctx, []models.User{u}); err != nil {
			t.Fatalf("upsert %d failed: %v", i, err)
		}
	}

	snap, err := db.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Users) != 1 {
		t.Errorf("expected 1 user after double upsert, got %d", len(snap.Users))
	}
}

func TestEmptySnapshot(t *testing.T) {

	db := testDB(t)

	snap, err := db.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot on empty store failed: %v", err)
	}
	if len(snap.Users) != 0 || len(snap.Events) != 0 {
		t.Errorf("expected empty snapshot, got %d users, %d events",
			len(snap.Users), len(snap.Events))
	}
}

func TestIngestRejectsEmptyIDs(t *testing.T) {

	db := testDB(t)
	ctx := context.Background()

	if _, err := db.UpsertUsers(ctx, []models.User{{ID: ""}}); err == nil {
		t.Error("expected error for user with empty id")
	}
	if _, err := db.InsertEvents(ctx, []models.UsageEvent{{ID: ""}}); err == nil {
		t.Error("expected error for event with empty id")
	}
}
