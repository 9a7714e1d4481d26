package storage

import (
	"context"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
)

// EventRepository is the append-only per-user event log. Backends differ
// (flat file, sqlite, postgres) but the contract is identical: appends are
// durable before returning, reads come back ascending by occurrence time
// with insertion order preserved for equal timestamps.
type EventRepository interface {
	AppendEvent(ctx context.Context, rec *internal.EventRecord) error
	ListEvents(ctx context.Context, userID int64) ([]internal.EventRecord, error)
	Close() error
}
