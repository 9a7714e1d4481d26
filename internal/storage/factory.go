package storage

import (
	"fmt"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
	"github.com/fleur-roar/sleep-tracker-bot/internal/config"
)

// NewEventRepository builds the backend selected by STORAGE_BACKEND.
// A failure here is fatal for the process: the recorder cannot run without
// a working store.
func NewEventRepository(cfg *config.Config, logger internal.Logger) (EventRepository, error) {
	switch cfg.DBType {
	case "file":
		return NewFileStorage(cfg.EventsFile, logger)
	case "sqlite":
		return NewSQLiteStorage(cfg.SQLitePath, logger)
	case "postgres":
		return NewPostgresStorage(cfg.DBDSN, logger)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.DBType)
	}
}
