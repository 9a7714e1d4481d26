package main

import (
	"log"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
	"github.com/fleur-roar/sleep-tracker-bot/internal/api"
	"github.com/fleur-roar/sleep-tracker-bot/internal/auth"
	"github.com/fleur-roar/sleep-tracker-bot/internal/config"
	"github.com/fleur-roar/sleep-tracker-bot/internal/service"
	"github.com/fleur-roar/sleep-tracker-bot/internal/storage"
)

// app carries the process-wide dependencies handlers need. Built once at
// startup and injected; nothing global.
type app struct {
	logger internal.Logger
	events storage.EventRepository
	clock  internal.Clock
	report service.ReportOptions
}

func (a *app) Logger() internal.Logger               { return a.logger }
func (a *app) EventRepo() storage.EventRepository    { return a.events }
func (a *app) Clock() internal.Clock                 { return a.clock }
func (a *app) ReportDefaults() service.ReportOptions { return a.report }

var _ api.App = (*app)(nil)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Storage is the one shared mutable resource; without it nothing
	// works, so an open failure is fatal.
	events, err := storage.NewEventRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init event store: %v", err)
	}
	defer events.Close()

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(cfg.LocalTokens, logger)
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
	}

	a := &app{
		logger: logger,
		events: events,
		clock:  internal.OffsetClock{Offset: cfg.TimeOffset},
		report: service.ReportOptions{
			WindowDays:    cfg.ChartWindowDays,
			FillEmptyDays: cfg.ChartFillEmpty,
		},
	}

	r := api.NewRouter(a, provider, cfg)

	logger.Infof("server running on :%s (backend=%s)", cfg.Port, cfg.DBType)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
