package api

import (
	"github.com/fleur-roar/sleep-tracker-bot/internal"
	"github.com/fleur-roar/sleep-tracker-bot/internal/service"
	"github.com/fleur-roar/sleep-tracker-bot/internal/storage"
)

// App is what handlers need from the process: the logger, the single event
// store instance, the trusted clock, and the report defaults. Everything is
// injected at startup; there are no package-level singletons.
type App interface {
	Logger() internal.Logger
	EventRepo() storage.EventRepository
	Clock() internal.Clock
	ReportDefaults() service.ReportOptions
}
