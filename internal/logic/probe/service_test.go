package probe_test

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/probe-service/internal/logic/probe"
)

// atomicRecorder is a concurrency-safe Recorder stub.
type atomicRecorder struct {
	requests  atomic.Int64
	errors    atomic.Int64
	durations atomic.Int64
}

func (r *atomicRecorder) RecordRequest() { r.requests.Add(1) }
func (r *atomicRecorder) RecordError() { r.errors.Add(1) }

func (r *atomicRecorder) ObserveDuration(time.Duration) {
	r.durations.Add(1)
}

func TestService_Ping_Success(t *testing.T) {
	t.Parallel()

	rec := &atomicRecorder{}
	svc := probe.New(slog.Default(), rec, "probe-abc123", 0, time.Millisecond, 2*time.Millisecond)

	before := time.Now()

	result, err := svc.Ping(t.Context())
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Equal(t, "ok", result.Status)
	require.Equal(t, "pong", result.Message)
	require.Equal(t, "probe-abc123", result.PodName)
	require.False(t, result.Timestamp.Before(before))

	require.EqualValues(t, 1, rec.requests.Load())
	require.EqualValues(t, 0, rec.errors.Load())
	require.EqualValues(t, 1, rec.durations.Load())
}

func TestService_Ping_Failure(t *testing.T) {
	t.Parallel()

	rec := &atomicRecorder{}
	// Error rate 1 makes every roll fail, since rolls are drawn from [0,1).
	svc := probe.New(slog.Default(), rec, "", 1, time.Millisecond, 2*time.Millisecond)

	result, err := svc.Ping(t.Context())
	require.ErrorIs(t, err, probe.ErrSimulatedFailure)
	require.Nil(t, result)

	require.EqualValues(t, 1, rec.requests.Load())
	require.EqualValues(t, 1, rec.errors.Load())
	require.EqualValues(t, 1, rec.durations.Load())
}

func TestService_Ping_EmptyPodName(t *testing.T) {
	t.Parallel()

	rec := &atomicRecorder{}
	svc := probe.New(slog.Default(), rec, "", 0, time.Millisecond, 2*time.Millisecond)

	result, err := svc.Ping(t.Context())
	require.NoError(t, err)
	require.Empty(t, result.PodName)
}

func TestService_Ping_Concurrent(t *testing.T) {
	t.Parallel()

	const workers = 20

	rec := &atomicRecorder{}
	svc := probe.New(slog.Default(), rec, "probe-abc123", 0, time.Millisecond, 2*time.Millisecond)

	var wg sync.WaitGroup

	errs := make(chan error, workers)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Ping(t.Context())
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	require.EqualValues(t, workers, rec.requests.Load())
	require.EqualValues(t, 0, rec.errors.Load())
	require.EqualValues(t, workers, rec.durations.Load())
}
