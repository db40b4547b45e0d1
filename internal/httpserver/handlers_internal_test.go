package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/probe-service/internal/infra/appstate"
	"github.com/skillcoder/probe-service/internal/infra/metrics"
	"github.com/skillcoder/probe-service/internal/infra/pinger"
	"github.com/skillcoder/probe-service/internal/logic/probe"
)

// runningState satisfies appstater with a fixed running view.
type runningState struct{}

func (runningState) GetState() appstate.State { return appstate.StateRunning }
func (runningState) IsHealthy() bool { return true }
func (runningState) IsReady() bool { return true }

func (runningState) GetUptime() time.Duration { return time.Minute }

func (runningState) GetStartTime() time.Time { return time.Now().Add(-time.Minute) }

func (runningState) GetAllStats() map[string]*pinger.Statistics {
	return map[string]*pinger.Statistics{}
}

func newTestServer(t *testing.T, errorRate float64) (*Server, *metrics.Metrics) {
	t.Helper()

	logger := slog.Default()
	m := metrics.New()
	svc := probe.New(logger, m, "probe-test-0", errorRate, time.Millisecond, 2*time.Millisecond)

	return New(logger, runningState{}, svc, ""), m
}

func doRequest(srv *Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)

	srv.routes().ServeHTTP(rec, req)

	return rec
}

func TestHandlePing_Success(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t, 0)

	rec := doRequest(srv, http.MethodGet, "/ping")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got probe.Result

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "ok", got.Status)
	require.Equal(t, "pong", got.Message)
	require.Equal(t, "probe-test-0", got.PodName)
	require.False(t, got.Timestamp.IsZero())

	expected := strings.NewReader(`
# HELP ping_requests_total Total number of /ping requests received.
# TYPE ping_requests_total counter
ping_requests_total 1
# HELP ping_errors_total Total number of /ping requests that failed with a synthetic error.
# TYPE ping_errors_total counter
ping_errors_total 0
`)

	err := testutil.GatherAndCompare(m.Gatherer(), expected,
		"ping_requests_total", "ping_errors_total",
	)
	require.NoError(t, err)
}

func TestHandlePing_SyntheticFailure(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t, 1)

	rec := doRequest(srv, http.MethodGet, "/ping")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got errorResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "error", got.Status)
	require.Equal(t, "simulated failure", got.Message)

	// One request, one error, one duration sample even on the failure path.
	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	values := map[string]float64{}

	for _, family := range families {
		switch family.GetName() {
		case "ping_requests_total", "ping_errors_total":
			values[family.GetName()] = family.GetMetric()[0].GetCounter().GetValue()
		case "ping_request_duration_seconds":
			values[family.GetName()] = float64(family.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}

	require.InDelta(t, 1, values["ping_requests_total"], 0.0001)
	require.InDelta(t, 1, values["ping_errors_total"], 0.0001)
	require.InDelta(t, 1, values["ping_request_duration_seconds"], 0.0001)
}

func TestHandlePing_ErrorsNeverExceedRequests(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t, 0.5)

	const calls = 50

	for range calls {
		doRequest(srv, http.MethodGet, "/ping")
	}

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	var requests, errors float64

	for _, family := range families {
		switch family.GetName() {
		case "ping_requests_total":
			requests = family.GetMetric()[0].GetCounter().GetValue()
		case "ping_errors_total":
			errors = family.GetMetric()[0].GetCounter().GetValue()
		}
	}

	require.InDelta(t, calls, requests, 0.0001)
	require.LessOrEqual(t, errors, requests)
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	for _, errorRate := range []float64{0, 1} {
		srv, _ := newTestServer(t, errorRate)

		rec := doRequest(srv, http.MethodGet, "/health")

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
	}
}

func TestOpsEndpoints(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, 0)

	require.Equal(t, http.StatusOK, doRequest(srv, http.MethodGet, "/-/healthz").Code)
	require.Equal(t, http.StatusOK, doRequest(srv, http.MethodGet, "/-/readyz").Code)

	rec := doRequest(srv, http.MethodGet, "/-/status")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"state":"running"`)
}
