package httpserver

import "time"

const (
	defaultPort        = "8080"
	defaultMetricsPort = "9090"

	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	// writeTimeout must leave room for the injected /ping latency on top of
	// encoding time.
	writeTimeout   = 5 * time.Second
	idleTimeout    = 60 * time.Second
	maxHeaderBytes = 1 << 12 // 4kb
)
