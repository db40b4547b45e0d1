package pinger

import "context"

// Pinger defines the interface for component health check pingers
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}
