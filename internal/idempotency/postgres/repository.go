package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/michaelgreenl/tally-tracker-server/internal/idempotency"
)

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, key, userID string) (*idempotency.Log, error) {
	row := s.db.QueryRow(ctx, `
        SELECT key, user_id, created_at
        FROM idempotency_logs
        WHERE key = $1 AND user_id = $2
        LIMIT 1
    `, key, userID)

	var l idempotency.Log
	err := row.Scan(&l.Key, &l.UserID, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get idempotency log: %w", err)
	}

	return &l, nil
}

func (s *PostgresStore) Create(ctx context.Context, key, userID string) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO idempotency_logs (key, user_id, created_at)
        VALUES ($1, $2, $3)
    `, key, userID, time.Now())

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return idempotency.ErrDuplicateKey
	}

	return err
}

func (s *PostgresStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM idempotency_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
