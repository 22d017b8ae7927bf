package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/summary/:date", "200"))

	RecordHTTPRequest("GET", "/api/summary/:date", 200, 15*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/summary/:date", "200"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestRecordUpstream(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("summary", "failure"))

	RecordUpstream("summary", "failure", time.Second)
	RecordUpstream("summary", "failure", time.Second)

	after := testutil.ToFloat64(UpstreamRequests.WithLabelValues("summary", "failure"))
	if after-before != 2 {
		t.Fatalf("expected counter to grow by 2, got %v", after-before)
	}
}

func TestRecordUnclassified(t *testing.T) {
	before := testutil.ToFloat64(UnclassifiedStatuses.WithLabelValues("tiktok"))

	RecordUnclassified("tiktok", 7)
	RecordUnclassified("tiktok", 0)
	RecordUnclassified("tiktok", -3)

	after := testutil.ToFloat64(UnclassifiedStatuses.WithLabelValues("tiktok"))
	if after-before != 7 {
		t.Fatalf("expected counter to grow by 7, got %v", after-before)
	}
}

func TestRecordUnclassified_NormalizesPlatform(t *testing.T) {
	before := testutil.ToFloat64(UnclassifiedStatuses.WithLabelValues("youtube"))

	RecordUnclassified("YouTube", 2)
	RecordUnclassified(" youtube ", 3)

	after := testutil.ToFloat64(UnclassifiedStatuses.WithLabelValues("youtube"))
	if after-before != 5 {
		t.Fatalf("expected counter to grow by 5, got %v", after-before)
	}
}

func TestRecordUnclassified_CapsPlatformLabels(t *testing.T) {
	for i := 0; i < maxPlatformLabels+10; i++ {
		RecordUnclassified(fmt.Sprintf("platform-%d", i), 1)
	}

	platformMu.Lock()
	n := len(platformLabels)
	platformMu.Unlock()
	if n > maxPlatformLabels {
		t.Fatalf("expected at most %d platform labels, got %d", maxPlatformLabels, n)
	}
	if got := testutil.ToFloat64(UnclassifiedStatuses.WithLabelValues(overflowPlatform)); got == 0 {
		t.Fatalf("expected overflow platforms to be folded into %s", overflowPlatform)
	}
}
