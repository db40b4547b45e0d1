package probe

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	statusOK    = "ok"
	messagePong = "pong"
)

// Service implements the ping probe: per call it either fails with a
// synthetic error or responds after an injected uniform delay, recording
// request count, error count and duration through the Recorder port.
type Service struct {
	logger    *slog.Logger
	recorder  Recorder
	podName   string
	errorRate float64
	minDelay  time.Duration
	maxDelay  time.Duration

	// rng is shared by concurrent requests; the sleep seam exists so tests
	// can run without real delays.
	mu    sync.Mutex
	rng   *rand.Rand
	sleep func(d time.Duration)
}

// New creates a new probe service. errorRate must be in [0,1] and
// minDelay < maxDelay; both are validated by config at startup.
func New(
	logger *slog.Logger,
	recorder Recorder,
	podName string,
	errorRate float64,
	minDelay time.Duration,
	maxDelay time.Duration,
) *Service {
	seed := uint64(time.Now().UnixNano())

	return &Service{
		logger:    logger,
		recorder:  recorder,
		podName:   podName,
		errorRate: errorRate,
		minDelay:  minDelay,
		maxDelay:  maxDelay,
		rng:       rand.New(rand.NewPCG(seed, seed>>1)),
		sleep:     time.Sleep,
	}
}

// Ping runs one probe invocation. The request counter is incremented exactly
// once per call and the duration sample always covers the full execution,
// error path included. The injected delay is deliberately not cancellable.
func (s *Service) Ping(ctx context.Context) (*Result, error) {
	start := time.Now()

	s.recorder.RecordRequest()

	defer func() {
		s.recorder.ObserveDuration(time.Since(start))
	}()

	if s.roll() < s.errorRate {
		s.recorder.RecordError()
		s.logger.DebugContext(ctx, "injecting synthetic failure")

		return nil, ErrSimulatedFailure
	}

	delay := s.delay()
	s.sleep(delay)

	s.logger.DebugContext(ctx, "ping served", "delay", delay)

	return &Result{
		Status:    statusOK,
		Message:   messagePong,
		Timestamp: time.Now(),
		PodName:   s.podName,
	}, nil
}

// roll draws a uniform value in [0,1)
func (s *Service) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}

// delay draws a uniform duration in [minDelay, maxDelay)
func (s *Service) delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.maxDelay - s.minDelay
	if span <= 0 {
		return s.minDelay
	}

	return s.minDelay + time.Duration(s.rng.Int64N(int64(span)))
}
