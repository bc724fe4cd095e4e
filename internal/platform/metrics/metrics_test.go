package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry_CountersAndHandler(t *testing.T) {
	t.Parallel()

	r := New(WithNamespace("test"))
	r.ObserveHTTP("/api/health", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	r.ObserveSource("postgres", "match_rows", nil, time.Millisecond)
	r.ObserveSource("postgres", "match_rows", errors.New("boom"), time.Millisecond)
	r.CacheHit("match_rows")
	r.CacheMiss("match_rows")
	r.CacheMiss("match_rows")
	r.ObserveJob("refresh", nil, time.Second)
	r.SetBreakerOpen("postgres", true)

	if got := testutil.ToFloat64(r.cacheLookups.WithLabelValues("match_rows", "miss")); got != 2 {
		t.Fatalf("unexpected cache misses: %v", got)
	}
	if got := testutil.ToFloat64(r.sourceQueries.WithLabelValues("postgres", "match_rows", "error")); got != 1 {
		t.Fatalf("unexpected source errors: %v", got)
	}
	if got := testutil.ToFloat64(r.breakerState.WithLabelValues("postgres")); got != 1 {
		t.Fatalf("expected open breaker gauge, got %v", got)
	}

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `test_analytics_http_requests_total{method="GET",route="/api/health",status_code="200"} 1`) {
		t.Fatalf("http counter missing from exposition:\n%s", body)
	}
}

func TestRegistry_NilIsNoop(t *testing.T) {
	t.Parallel()

	var r *Registry
	r.ObserveHTTP("/", http.MethodGet, http.StatusOK, 0)
	r.CacheHit("x")
	r.ObserveJob("refresh", nil, 0)
}
