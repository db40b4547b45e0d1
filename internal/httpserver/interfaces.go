package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/probe-service/internal/infra/appstate"
	"github.com/skillcoder/probe-service/internal/infra/pinger"
	"github.com/skillcoder/probe-service/internal/logic/probe"
)

// prober is the inbound port of the probe domain
type prober interface {
	Ping(ctx context.Context) (*probe.Result, error)
}

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}
