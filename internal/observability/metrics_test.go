package observability

import (
	"testing"
	"time"

	"github.com/danmuck/chrolisctl/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)

	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("plannerd", "GET", "/health", 200, 12*time.Millisecond)

	before := testutil.ToFloat64(codecOperations.WithLabelValues("encode", "ok"))
	RecordCodec("encode", "ok")
	if got := testutil.ToFloat64(codecOperations.WithLabelValues("encode", "ok")); got != before+1 {
		t.Fatalf("expected codec counter to increase by 1, got %v -> %v", before, got)
	}

	corrections := testutil.ToFloat64(codecCorrections)
	RecordPulseCorrection()
	if got := testutil.ToFloat64(codecCorrections); got != corrections+1 {
		t.Fatalf("expected correction counter to increase by 1, got %v -> %v", corrections, got)
	}
}
