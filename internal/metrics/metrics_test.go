package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(translated.WithLabelValues("key"))
	RecordTranslated("key")
	RecordTranslated("key")
	if got := testutil.ToFloat64(translated.WithLabelValues("key")); got != before+2 {
		t.Fatalf("got %v, want %v", got, before+2)
	}

	beforeTicks := testutil.ToFloat64(ticks)
	RecordTick(0)
	RecordTick(16 * time.Millisecond)
	if got := testutil.ToFloat64(ticks); got != beforeTicks+2 {
		t.Fatalf("got %v ticks, want %v", got, beforeTicks+2)
	}

	UpdateDepth(7)
	if got := testutil.ToFloat64(depth); got != 7 {
		t.Fatalf("got depth %v, want 7", got)
	}
}

func TestHandler(t *testing.T) {
	RecordSent()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "hazel_transport_sent_total") {
		t.Fatal("sent counter missing from exposition")
	}
}
