package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelgreenl/tally-tracker-server/internal/idempotency"
	store "github.com/michaelgreenl/tally-tracker-server/internal/idempotency/postgres"
)

func TestGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := store.NewPostgresStore(mock)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT key, user_id, created_at").
			WithArgs("key-1", "user-123").
			WillReturnRows(pgxmock.NewRows([]string{"key", "user_id", "created_at"}).
				AddRow("key-1", "user-123", now))

		l, err := s.Get(ctx, "key-1", "user-123")
		require.NoError(t, err)
		assert.Equal(t, "key-1", l.Key)
		assert.Equal(t, "user-123", l.UserID)
	})

	t.Run("absent returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT key, user_id, created_at").
			WithArgs("key-1", "someone-else").
			WillReturnError(pgx.ErrNoRows)

		l, err := s.Get(ctx, "key-1", "someone-else")
		require.NoError(t, err)
		assert.Nil(t, l)
	})
}

func TestCreateLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := store.NewPostgresStore(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO idempotency_logs").
			WithArgs("key-1", "user-123", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, s.Create(ctx, "key-1", "user-123"))
	})

	t.Run("losing the insert race maps to the duplicate sentinel", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO idempotency_logs").
			WithArgs("key-1", "user-123", pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idempotency_logs_key_user_id_key"})

		assert.Equal(t, idempotency.ErrDuplicateKey, s.Create(ctx, "key-1", "user-123"))
	})
}

func TestDeleteOlderThan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := store.NewPostgresStore(mock)
	cutoff := time.Now().Add(-24 * time.Hour)

	mock.ExpectExec("DELETE FROM idempotency_logs WHERE created_at").
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 12))

	count, err := s.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}
