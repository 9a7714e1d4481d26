package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("storage: failed to connect to postgres: %v", err)
		return nil, err
	}

	s := &PostgresStorage{pool: pool, logger: logger}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return s, nil
}

func (p *PostgresStorage) migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS events (
			id          BIGSERIAL PRIMARY KEY,
			user_id     BIGINT NOT NULL,
			kind        TEXT NOT NULL,
			occurred_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_events_user_time
			ON events (user_id, occurred_at)`)
	return err
}

func (p *PostgresStorage) AppendEvent(ctx context.Context, rec *internal.EventRecord) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO events (user_id, kind, occurred_at) VALUES ($1, $2, $3)`,
		rec.UserID, string(rec.Kind), rec.OccurredAt)
	if err != nil {
		p.logger.Errorf("storage: failed to insert event: %v", err)
		return fmt.Errorf("%w: %v", internal.ErrWriteFailed, err)
	}
	return nil
}

func (p *PostgresStorage) ListEvents(ctx context.Context, userID int64) ([]internal.EventRecord, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT user_id, kind, occurred_at FROM events WHERE user_id = $1 ORDER BY occurred_at, id`,
		userID)
	if err != nil {
		p.logger.Errorf("storage: failed to query events: %v", err)
		return nil, err
	}
	defer rows.Close()

	recs := []internal.EventRecord{}
	for rows.Next() {
		var (
			rec internal.EventRecord
			k   string
		)
		if err := rows.Scan(&rec.UserID, &k, &rec.OccurredAt); err != nil {
			p.logger.Errorf("storage: failed to scan event: %v", err)
			return nil, err
		}
		rec.Kind = internal.EventKind(k)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- Compile-time assertion ---
var _ EventRepository = (*PostgresStorage)(nil)
