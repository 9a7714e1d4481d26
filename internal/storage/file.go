package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
)

// fileEvent is the on-disk row shape: timestamps are fixed-format strings
// with second precision and no timezone marker.
type fileEvent struct {
	UserID     int64  `json:"user_id"`
	Kind       string `json:"kind"`
	OccurredAt string `json:"occurred_at"`
}

// FileStorage keeps the full log in memory and rewrites the backing JSON
// file atomically on every append. The mutex guards the whole
// append-then-persist sequence, so concurrent appends never lose a record.
type FileStorage struct {
	mu         sync.RWMutex
	events     []*internal.EventRecord // insertion order, all users
	userIndex  map[int64][]*internal.EventRecord
	eventsFile string
	logger     internal.Logger
}

func NewFileStorage(eventsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		userIndex:  make(map[int64][]*internal.EventRecord),
		eventsFile: eventsFile,
		logger:     logger,
	}

	if dir := filepath.Dir(eventsFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create data dir: %w", err)
		}
	}

	if err := s.load(); err != nil {
		logger.Errorf("storage: failed to load events: %v", err)
		return nil, err
	}

	return s, nil
}

// load reads the existing log, if any. A missing or empty file is a valid
// empty store; opening never overwrites existing data.
func (s *FileStorage) load() error {
	file, err := os.Open(s.eventsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var rows []fileEvent
	if err := json.NewDecoder(file).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	for _, row := range rows {
		ts, err := time.ParseInLocation(internal.TimeLayout, row.OccurredAt, time.Local)
		if err != nil {
			return fmt.Errorf("storage: bad timestamp %q: %w", row.OccurredAt, err)
		}
		rec := &internal.EventRecord{
			UserID:     row.UserID,
			Kind:       internal.EventKind(row.Kind),
			OccurredAt: ts,
		}
		s.events = append(s.events, rec)
		s.userIndex[rec.UserID] = append(s.userIndex[rec.UserID], rec)
	}

	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

// AppendEvent persists the record before acknowledging it. The in-memory
// state is only updated after the file write succeeds, so a failed write
// leaves the store exactly as it was.
func (s *FileStorage) AppendEvent(ctx context.Context, rec *internal.EventRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]fileEvent, 0, len(s.events)+1)
	for _, e := range s.events {
		rows = append(rows, fileEvent{
			UserID:     e.UserID,
			Kind:       string(e.Kind),
			OccurredAt: e.OccurredAt.Format(internal.TimeLayout),
		})
	}
	rows = append(rows, fileEvent{
		UserID:     rec.UserID,
		Kind:       string(rec.Kind),
		OccurredAt: rec.OccurredAt.Format(internal.TimeLayout),
	})

	if err := atomicWriteFileJSON(s.eventsFile, rows); err != nil {
		s.logger.Errorf("storage: error saving events: %v", err)
		return fmt.Errorf("%w: %v", internal.ErrWriteFailed, err)
	}

	stored := *rec
	s.events = append(s.events, &stored)
	s.userIndex[stored.UserID] = append(s.userIndex[stored.UserID], &stored)
	return nil
}

// ListEvents returns the user's records ascending by occurrence time.
// The index keeps insertion order, so a stable sort preserves append order
// for equal timestamps.
func (s *FileStorage) ListEvents(ctx context.Context, userID int64) ([]internal.EventRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recsPtr, ok := s.userIndex[userID]
	if !ok {
		return []internal.EventRecord{}, nil
	}

	recs := make([]internal.EventRecord, len(recsPtr))
	for i, r := range recsPtr {
		recs[i] = *r
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].OccurredAt.Before(recs[j].OccurredAt)
	})

	return recs, nil
}

// Close is a no-op: every append is already durable.
func (s *FileStorage) Close() error {
	return nil
}

// --- Compile-time assertion ---
var _ EventRepository = (*FileStorage)(nil)
