// Package idempotency records client-supplied deduplication keys so retried
// mutating requests are recognized and short-circuited instead of re-executed.
package idempotency

//go:generate mockgen -destination=../mocks/mock_idempotency_store.go -package=mocks github.com/michaelgreenl/tally-tracker-server/internal/idempotency Store

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateKey reports that the (key, user) pair already exists; the
// caller lost a race with an identical concurrent request.
var ErrDuplicateKey = errors.New("idempotency key already recorded")

// Log marks one sighting of an idempotency key. Keys are scoped per user:
// the same key from two users never collides.
type Log struct {
	Key       string
	UserID    string
	CreatedAt time.Time
}

type Store interface {
	Get(ctx context.Context, key, userID string) (*Log, error)
	Create(ctx context.Context, key, userID string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
