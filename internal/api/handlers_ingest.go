// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/vocallytics/vocallytics/internal/models"
)

// maxIngestBody caps ingest request bodies at 32 MiB.
const maxIngestBody = 32 << 20

// IngestUsers loads user records into the store.
//
// Method: POST
// Path: /api/v1/ingest/users
// Body: JSON array of users
func (h *Handler) IngestUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := decodeBody(w, r, &users); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	n, err := h.store.UpsertUsers(r.Context(), users)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "INGEST_FAILED", "failed to store users")
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]int{"ingested": n})
}

// IngestEvents loads usage events into the store.
//
// Method: POST
// Path: /api/v1/ingest/events
// Body: JSON array of usage events
func (h *Handler) IngestEvents(w http.ResponseWriter, r *http.Request) {
	var events []models.UsageEvent
	if err := decodeBody(w, r, &events); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	n, err := h.store.InsertEvents(r.Context(), events)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "INGEST_FAILED", "failed to store events")
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]int{"ingested": n})
}

// decodeBody decodes a JSON request body with a size cap and strict
// field checking.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxIngestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
