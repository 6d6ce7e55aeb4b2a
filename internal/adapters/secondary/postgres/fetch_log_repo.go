package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"artwork-gallery/internal/core/domain"
	output "artwork-gallery/internal/core/ports/output"
)

const fetchLogSchema = `
	CREATE TABLE IF NOT EXISTS fetch_log (
		id            UUID PRIMARY KEY,
		started_at    TIMESTAMPTZ NOT NULL,
		duration_ms   BIGINT NOT NULL,
		outcome       TEXT NOT NULL,
		artwork_count INTEGER NOT NULL DEFAULT 0,
		error         TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS fetch_log_started_at_idx ON fetch_log (started_at DESC);
`

type fetchLogRepo struct {
	pool *pgxpool.Pool
}

// NewFetchLogRepository creates a new FetchLogRepository
func NewFetchLogRepository(pool *pgxpool.Pool) output.FetchLogRepository {
	return &fetchLogRepo{pool: pool}
}

// EnsureFetchLogSchema creates the fetch_log table if it does not exist.
func EnsureFetchLogSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, fetchLogSchema); err != nil {
		return fmt.Errorf("create fetch_log schema: %w", err)
	}
	return nil
}

func (r *fetchLogRepo) Create(ctx context.Context, rec *domain.FetchRecord) error {
	query := `
		INSERT INTO fetch_log
			(id, started_at, duration_ms, outcome, artwork_count, error)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.StartedAt, rec.Duration.Milliseconds(),
		string(rec.Outcome), rec.ArtworkCount, rec.Error,
	)
	if err != nil {
		return fmt.Errorf("create fetch record: %w", err)
	}
	return nil
}

func (r *fetchLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.FetchRecord, error) {
	query := `
		SELECT id, started_at, duration_ms, outcome, artwork_count, error
		FROM fetch_log
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list fetch records: %w", err)
	}
	defer rows.Close()

	var records []*domain.FetchRecord
	for rows.Next() {
		rec, err := scanFetchRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fetch record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fetch record rows: %w", err)
	}

	return records, nil
}

func scanFetchRecord(row pgx.Row) (*domain.FetchRecord, error) {
	var (
		rec        domain.FetchRecord
		durationMS int64
		outcome    string
	)
	if err := row.Scan(&rec.ID, &rec.StartedAt, &durationMS, &outcome, &rec.ArtworkCount, &rec.Error); err != nil {
		return nil, err
	}
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.Outcome = domain.FetchOutcome(outcome)
	return &rec, nil
}
