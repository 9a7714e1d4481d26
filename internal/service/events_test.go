package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
	"github.com/fleur-roar/sleep-tracker-bot/internal/testutil"
)

// fakeRepo is an in-memory EventRepository with injectable failures.
type fakeRepo struct {
	events    []internal.EventRecord
	appendErr error
	listErr   error
}

func (f *fakeRepo) AppendEvent(ctx context.Context, rec *internal.EventRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, *rec)
	return nil
}

func (f *fakeRepo) ListEvents(ctx context.Context, userID int64) ([]internal.EventRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []internal.EventRecord{}
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) Close() error { return nil }

func fixedClock() *testutil.StubClock {
	return testutil.NewStubClock(time.Date(2024, 1, 2, 7, 0, 0, 0, time.Local))
}

func TestRecordEvent(t *testing.T) {
	repo := &fakeRepo{}
	clock := fixedClock()

	rec, err := RecordEvent(context.Background(), repo, clock, 42, internal.KindWakeUp)

	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.UserID)
	assert.Equal(t, internal.KindWakeUp, rec.Kind)
	// The stored timestamp is the trusted clock's, echoed back for display.
	assert.Equal(t, clock.Now(), rec.OccurredAt)
	require.Len(t, repo.events, 1)
}

func TestRecordEventInvalidKind(t *testing.T) {
	repo := &fakeRepo{}

	rec, err := RecordEvent(context.Background(), repo, fixedClock(), 42, internal.EventKind("unknown_kind"))

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, internal.ErrInvalidKind)
	// Rejected at the boundary: nothing reached the store.
	assert.Empty(t, repo.events)
}

func TestRecordEventWriteFailureSurfaces(t *testing.T) {
	repo := &fakeRepo{appendErr: internal.ErrWriteFailed}

	rec, err := RecordEvent(context.Background(), repo, fixedClock(), 42, internal.KindSleep)

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, internal.ErrWriteFailed)
}

func TestListEventsSortsAscending(t *testing.T) {
	clock := fixedClock()
	repo := &fakeRepo{}
	ctx := context.Background()

	_, err := RecordEvent(ctx, repo, clock, 42, internal.KindWakeUp)
	require.NoError(t, err)
	clock.Advance(-8 * time.Hour) // sleep was recorded earlier
	_, err = RecordEvent(ctx, repo, clock, 42, internal.KindSleep)
	require.NoError(t, err)

	events := ListEvents(ctx, repo, internal.NopLogger{}, 42)

	require.Len(t, events, 2)
	assert.Equal(t, internal.KindSleep, events[0].Kind)
	assert.Equal(t, internal.KindWakeUp, events[1].Kind)
}

func TestListEventsReadDegraded(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("disk on fire")}

	events := ListEvents(context.Background(), repo, internal.NopLogger{}, 42)

	// Reports are best-effort: a failed read means "no events", not a crash.
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestValidateEventRequest(t *testing.T) {
	assert.NoError(t, ValidateEventRequest(&EventRequest{Kind: "sleep"}))
	assert.Error(t, ValidateEventRequest(&EventRequest{}))
}
