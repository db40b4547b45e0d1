package pinger

import (
	"slices"
	"sync"
	"time"
)

const (
	// latencyBufferSize is the number of recent ping latencies kept per pinger
	latencyBufferSize = 100

	percentileMax = 100.0
)

// latencyBuffer is a fixed-capacity circular buffer of durations
type latencyBuffer struct {
	buffer   []time.Duration
	capacity int
	index    int
	count    int
}

func newLatencyBuffer(capacity int) *latencyBuffer {
	return &latencyBuffer{
		buffer:   make([]time.Duration, 0, capacity),
		capacity: capacity,
	}
}

func (lb *latencyBuffer) add(d time.Duration) {
	if lb.count < lb.capacity {
		lb.buffer = append(lb.buffer, d)
		lb.count++

		return
	}

	lb.buffer[lb.index] = d
	lb.index = (lb.index + 1) % lb.capacity
}

// getAll returns the buffered durations in insertion order
func (lb *latencyBuffer) getAll() []time.Duration {
	if lb.count == 0 {
		return nil
	}

	result := make([]time.Duration, lb.count)
	if lb.count < lb.capacity {
		copy(result, lb.buffer)
	} else {
		copy(result, lb.buffer[lb.index:])
		copy(result[lb.capacity-lb.index:], lb.buffer[:lb.index])
	}

	return result
}

// Stats tracks raw observations for a single pinger
type Stats struct {
	Name         string
	LastRun      time.Time
	LastError    error
	SuccessCount int
	ErrorCount   int
	latencies    *latencyBuffer
	mu           sync.RWMutex
}

// NewStats creates empty statistics for the named pinger
func NewStats(name string) *Stats {
	return &Stats{
		Name:      name,
		latencies: newLatencyBuffer(latencyBufferSize),
	}
}

func (s *Stats) record(latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LastRun = time.Now()
	s.LastError = err

	if err != nil {
		s.ErrorCount++

		return
	}

	s.SuccessCount++
	s.latencies.add(latency)
}

// LatencyMetrics contains calculated latency statistics over recent successes
type LatencyMetrics struct {
	Count   int           `json:"count"`
	Median  time.Duration `json:"median"`
	Average time.Duration `json:"average"`
	P90     time.Duration `json:"p90"`
	P99     time.Duration `json:"p99"`
}

// Statistics is a computed snapshot for a pinger, safe to hand out
type Statistics struct {
	Healthy      bool           `json:"healthy"`
	LastRun      time.Time      `json:"lastRun"`
	LastError    string         `json:"lastError,omitempty"`
	SuccessCount int            `json:"successCount"`
	ErrorCount   int            `json:"errorCount"`
	Latency      LatencyMetrics `json:"latency"`
}

// percentile returns the value at the given percentile from a sorted slice,
// using the floor index method.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	if p >= percentileMax {
		return sorted[len(sorted)-1]
	}

	if p < 0 {
		p = 0
	}

	index := int(float64(len(sorted)-1) * p / percentileMax)

	return sorted[index]
}

func median(sorted []time.Duration) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

func average(latencies []time.Duration) time.Duration {
	if len(latencies) == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range latencies {
		sum += d
	}

	return sum / time.Duration(len(latencies))
}

func calculateLatencyMetrics(latencies []time.Duration) LatencyMetrics {
	if len(latencies) == 0 {
		return LatencyMetrics{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	slices.Sort(sorted)

	return LatencyMetrics{
		Count:   len(sorted),
		Median:  median(sorted),
		Average: average(sorted),
		P90:     percentile(sorted, 90),
		P99:     percentile(sorted, 99),
	}
}

// Snapshot computes a Statistics value from the raw observations
func (s *Stats) Snapshot() *Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lastError := ""
	if s.LastError != nil {
		lastError = s.LastError.Error()
	}

	return &Statistics{
		Healthy:      s.LastError == nil,
		LastRun:      s.LastRun,
		LastError:    lastError,
		SuccessCount: s.SuccessCount,
		ErrorCount:   s.ErrorCount,
		Latency:      calculateLatencyMetrics(s.latencies.getAll()),
	}
}
