package db

import (
	"context"
	"log"
	"time"
)

type idempotencyPurger interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type tokenPurger interface {
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}

// Maintenance is the periodic cleanup job: it drops idempotency keys past
// their retention window and expired refresh tokens. A key purged here is no
// longer deduplicated, so retention must stay longer than any client retry
// window worth honoring.
type Maintenance struct {
	idempotency idempotencyPurger
	tokens      tokenPurger
	retention   time.Duration
	interval    time.Duration
}

func NewMaintenance(idempotency idempotencyPurger, tokens tokenPurger, retention time.Duration) *Maintenance {
	return &Maintenance{
		idempotency: idempotency,
		tokens:      tokens,
		retention:   retention,
		interval:    24 * time.Hour,
	}
}

// Start runs one sweep immediately, then repeats until ctx is cancelled.
func (m *Maintenance) Start(ctx context.Context) {
	m.sweep(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *Maintenance) sweep(ctx context.Context) {
	log.Println("[Maintenance] Cleaning up old idempotency keys...")

	cutoff := time.Now().Add(-m.retention)
	deleted, err := m.idempotency.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Printf("[Maintenance] Idempotency cleanup failed: %v", err)
	} else {
		log.Printf("[Maintenance] Deleted %d expired keys.", deleted)
	}

	deleted, err = m.tokens.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		log.Printf("[Maintenance] Refresh token cleanup failed: %v", err)
	} else {
		log.Printf("[Maintenance] Deleted %d expired refresh tokens.", deleted)
	}
}
