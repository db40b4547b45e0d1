package config

import "time"

// Env key constants. All probe-service configuration env vars use the PROBE_
// prefix; duration values use explicit units (e.g. 50ms, 2s).

// Log level: debug, info, warn, error.
const envKeyLogLevel = "PROBE_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "PROBE_LOG_FORMAT"

// Port for the main HTTP server (GET /ping, /health, /-/*).
const envKeyHTTPPort = "PROBE_HTTP_PORT"

// Port for Prometheus exposition (GET /metrics).
const envKeyMetricsPort = "PROBE_METRICS_PORT"

// Probability of a synthetic failure on /ping, in [0,1].
const envKeyErrorRate = "PROBE_ERROR_RATE"

// Injected latency window for successful /ping calls. Lower bound is
// inclusive, upper bound is exclusive.
const (
	envKeyMinDelay = "PROBE_MIN_DELAY"
	envKeyMaxDelay = "PROBE_MAX_DELAY"
)

// Component watchdog check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "PROBE_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Pod identity, set by the Kubernetes downward API. Read once at startup and
// embedded verbatim into every /ping response; absence is not an error.
const envKeyPodName = "POD_NAME"

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultHTTPPort       = "8080"
	defaultMetricsPort    = "9090"
	defaultErrorRate      = 0.05
	defaultMinDelay       = 10 * time.Millisecond
	defaultMaxDelay       = 110 * time.Millisecond
	defaultPingerInterval = 10 * time.Second
)
