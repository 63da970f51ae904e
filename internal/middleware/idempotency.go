package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/michaelgreenl/tally-tracker-server/internal/idempotency"
)

// IdempotencyKeyHeader carries the client's deduplication key.
const IdempotencyKeyHeader = "X-Idempotency-Key"

// Idempotency short-circuits a repeated mutating request with 204 when its
// key has been seen before. The guard fails open on every store failure:
// a duplicate write is cheaper than blocking a client's sync queue, so an
// unreachable store means the request proceeds. Only a confirmed duplicate
// (found record, or losing the insert race to an identical request) stops
// the handler.
func Idempotency(store idempotency.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(IdempotencyKeyHeader)
		if key == "" {
			return c.Next()
		}

		userID := UserID(c)
		if userID == "" {
			return c.Next()
		}

		existing, err := store.Get(c.Context(), key, userID)
		if err != nil {
			log.Printf("[Idempotency] Error: %v", err)
			return c.Next()
		}

		if existing != nil {
			log.Printf("[Idempotency] Skipping duplicate request: %s", key)
			return c.SendStatus(fiber.StatusNoContent)
		}

		if err := store.Create(c.Context(), key, userID); err != nil {
			if errors.Is(err, idempotency.ErrDuplicateKey) {
				log.Printf("[Idempotency] Skipping duplicate request: %s", key)
				return c.SendStatus(fiber.StatusNoContent)
			}
			log.Printf("[Idempotency] Error: %v", err)
		}

		return c.Next()
	}
}
