// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {

	before := testutil.CollectAndCount(APIRequestsTotal)
	RecordAPIRequest("/api/v1/report", "GET", 200, 15*time.Millisecond)
	after := testutil.CollectAndCount(APIRequestsTotal)

	if after <= before-1 {
		t.Errorf("expected request counter to grow, before=%d after=%d", before, after)
	}

	got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("/api/v1/report", "GET", "200"))
	if got < 1 {
		t.Errorf("counter for labelled request = %v, want >= 1", got)
	}
}

func TestTimeDBQuery(t *testing.T) {

	done := TimeDBQuery("select", "usage_events")
	done()

	count := testutil.CollectAndCount(DBQueryDuration)
	if count == 0 {
		t.Error("expected query duration histogram to have samples")
	}
}
