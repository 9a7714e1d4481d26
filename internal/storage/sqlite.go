package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
)

// SQLiteStorage implements EventRepository on a local SQLite database.
// Each append is a single INSERT, so no extra locking is needed: the
// AUTOINCREMENT id preserves insertion order for tie-breaking on reads.
type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger

	insertEvent *sql.Stmt
	listEvents  *sql.Stmt
}

func NewSQLiteStorage(path string, logger internal.Logger) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		logger.Errorf("storage: failed to open sqlite db: %v", err)
		return nil, err
	}

	s := &SQLiteStorage{db: db, logger: logger}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: prepare statements: %w", err)
	}

	return s, nil
}

// migrate creates the schema. Every statement uses IF NOT EXISTS, so
// opening an existing database is idempotent.
func (s *SQLiteStorage) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id     INTEGER NOT NULL,
			kind        TEXT NOT NULL,
			occurred_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_user_time
			ON events (user_id, occurred_at)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStorage) prepareStatements() error {
	var err error

	s.insertEvent, err = s.db.Prepare(`
		INSERT INTO events (user_id, kind, occurred_at)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}

	s.listEvents, err = s.db.Prepare(`
		SELECT user_id, kind, occurred_at
		FROM events
		WHERE user_id = ?
		ORDER BY occurred_at, id
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStorage) AppendEvent(ctx context.Context, rec *internal.EventRecord) error {
	_, err := s.insertEvent.ExecContext(ctx,
		rec.UserID, string(rec.Kind), rec.OccurredAt.Format(internal.TimeLayout))
	if err != nil {
		s.logger.Errorf("storage: failed to insert event: %v", err)
		return fmt.Errorf("%w: %v", internal.ErrWriteFailed, err)
	}
	return nil
}

func (s *SQLiteStorage) ListEvents(ctx context.Context, userID int64) ([]internal.EventRecord, error) {
	rows, err := s.listEvents.QueryContext(ctx, userID)
	if err != nil {
		s.logger.Errorf("storage: failed to query events: %v", err)
		return nil, err
	}
	defer rows.Close()

	recs := []internal.EventRecord{}
	for rows.Next() {
		var (
			rec internal.EventRecord
			k   string
			ts  string
		)
		if err := rows.Scan(&rec.UserID, &k, &ts); err != nil {
			s.logger.Errorf("storage: failed to scan event: %v", err)
			return nil, err
		}
		rec.Kind = internal.EventKind(k)
		rec.OccurredAt, err = time.ParseInLocation(internal.TimeLayout, ts, time.Local)
		if err != nil {
			s.logger.Errorf("storage: bad timestamp %q: %v", ts, err)
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	if s.insertEvent != nil {
		s.insertEvent.Close()
	}
	if s.listEvents != nil {
		s.listEvents.Close()
	}
	return s.db.Close()
}

// --- Compile-time assertion ---
var _ EventRepository = (*SQLiteStorage)(nil)
