package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/probe-service/internal/infra/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	m.RecordRequest()
	m.RecordRequest()
	m.RecordError()

	expected := strings.NewReader(`
# HELP ping_errors_total Total number of /ping requests that failed with a synthetic error.
# TYPE ping_errors_total counter
ping_errors_total 1
# HELP ping_requests_total Total number of /ping requests received.
# TYPE ping_requests_total counter
ping_requests_total 2
`)

	err := testutil.GatherAndCompare(m.Gatherer(), expected,
		"ping_requests_total", "ping_errors_total",
	)
	require.NoError(t, err)
}

func TestMetrics_Histogram(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	m.ObserveDuration(25 * time.Millisecond)
	m.ObserveDuration(75 * time.Millisecond)

	count, err := testutil.GatherAndCount(m.Gatherer(), "ping_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.RecordRequest()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)

	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "ping_requests_total 1")
	require.Contains(t, rec.Body.String(), "ping_request_duration_seconds")
	require.Contains(t, rec.Body.String(), "ping_errors_total 0")
}
