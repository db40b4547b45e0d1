package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillcoder/probe-service/internal/config"
	"github.com/skillcoder/probe-service/internal/httpserver"
	"github.com/skillcoder/probe-service/internal/infra/metrics"
	"github.com/skillcoder/probe-service/internal/infra/shutdown"
	"github.com/skillcoder/probe-service/internal/logic/probe"
)

type App struct {
	logger   *slog.Logger
	appState appstater
	watchdog watchdog
	servers  []appServer
}

// New creates a new application instance with all dependencies wired.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	wdg watchdog,
) (*App, error) {
	recorder := metrics.New()

	probeSvc := probe.New(
		logger,
		recorder,
		cfg.PodName,
		cfg.ErrorRate,
		cfg.MinDelay,
		cfg.MaxDelay,
	)

	httpServer := httpserver.New(logger, appState, probeSvc, cfg.HTTPPort)
	metricsServer := httpserver.NewMetricsServer(logger, recorder.Handler(), cfg.MetricsPort)

	app := &App{
		logger:   logger,
		appState: appState,
		watchdog: wdg,
		servers:  []appServer{httpServer, metricsServer},
	}

	// The watchdog shuts down after the servers it observes.
	if err := appState.RegisterShutdowner(wdg); err != nil {
		return nil, fmt.Errorf("register watchdog shutdowner: %w", err)
	}

	for _, server := range app.servers {
		if err := appState.RegisterShutdowner(server); err != nil {
			return nil, fmt.Errorf("register %s shutdowner: %w", server.Name(), err)
		}

		if err := appState.RegisterPinger(server); err != nil {
			return nil, fmt.Errorf("register %s pinger: %w", server.Name(), err)
		}
	}

	return app, nil
}

// Run starts all components and blocks until the context is cancelled or a
// termination signal arrives, then shuts everything down gracefully.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	signalHandler := shutdown.New(a.logger, a.appState)
	go signalHandler.HandleSignals(ctx, cancel)

	readyChans := make([]<-chan struct{}, 0, len(a.servers)+1)

	for _, server := range a.servers {
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", server.Name(), err)
		}

		readyChans = append(readyChans, server.Ready())
	}

	// Start the watchdog after the servers so its first round pings live
	// listeners.
	if err := a.watchdog.Start(ctx); err != nil {
		return fmt.Errorf("start watchdog: %w", err)
	}

	readyChans = append(readyChans, a.watchdog.Ready())

	<-allChannelsClose(ctx, a.logger, readyChans...)

	if ctx.Err() != nil {
		// Cancelled during startup; skip the running state entirely.
		return a.appState.Shutdown(ctx)
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running application state: %w", err)
	}

	a.logger.InfoContext(ctx, "probe service is running")

	<-ctx.Done()

	return a.appState.Shutdown(ctx)
}

// allChannelsClose returns a channel that closes when every input channel has
// closed, or when the context is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for _, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.WarnContext(ctx, "context done while waiting for components to become ready")

				return
			}
		}
	}()

	return out
}
