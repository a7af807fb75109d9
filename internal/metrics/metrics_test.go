// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/test", "200"))
	RecordAPIRequest("GET", "/test", "200", 50*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/test", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("APIActiveRequests after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("APIActiveRequests after dec = %v, want %v", got, before)
	}
}

func TestRecordDBQueryError(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("all_ratings"))
	RecordDBQuery("all_ratings", time.Millisecond, errors.New("boom"))
	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("all_ratings"))
	if after != before+1 {
		t.Errorf("DBQueryErrors = %v, want %v", after, before+1)
	}
}

func TestRecordDBQuerySuccessNoError(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("detail"))
	RecordDBQuery("detail", time.Millisecond, nil)
	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("detail"))
	if after != before {
		t.Errorf("DBQueryErrors = %v, want unchanged %v", after, before)
	}
}
