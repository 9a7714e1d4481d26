package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
	"github.com/fleur-roar/sleep-tracker-bot/internal/query"
	"github.com/fleur-roar/sleep-tracker-bot/internal/storage"
)

var validate = validator.New()

type EventRequest struct {
	Kind string `json:"kind" validate:"required"`
}

func ValidateEventRequest(body *EventRequest) error {
	return validate.Struct(body)
}

// RecordEvent validates the kind at the boundary, stamps a new record from
// the trusted clock, and appends it. The persisted record comes back so the
// caller can show the user the exact stored timestamp. Nothing reaches the
// store with an invalid kind.
func RecordEvent(ctx context.Context, repo storage.EventRepository, clock internal.Clock, userID int64, kind internal.EventKind) (*internal.EventRecord, error) {
	if !kind.Valid() {
		return nil, internal.ErrInvalidKind
	}
	rec := &internal.EventRecord{
		UserID:     userID,
		Kind:       kind,
		OccurredAt: clock.Now(),
	}
	if err := repo.AppendEvent(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListEvents returns the user's full chronology, ascending. A failed read
// degrades to an empty list with a logged warning: reports are best-effort
// and the user sees "no events" rather than a crash.
func ListEvents(ctx context.Context, repo storage.EventRepository, logger internal.Logger, userID int64) []internal.EventRecord {
	recs, err := repo.ListEvents(ctx, userID)
	if err != nil {
		logger.Warnf("service: event read degraded for user %d: %v", userID, err)
		return []internal.EventRecord{}
	}
	return query.SortEvents(recs)
}
