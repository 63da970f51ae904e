package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the counter routes. Every route requires a session;
// the idempotency guard wraps all of them so mutating retries are safe.
func RegisterRoutes(app *fiber.App, h *CounterHandler, protect, idempotency fiber.Handler) {
	counters := app.Group("/counters", protect, idempotency)

	counters.Post("/", h.Create)
	counters.Get("/", h.List)
	counters.Get("/:counterId", h.Get)
	counters.Delete("/:counterId", h.Delete)
	counters.Put("/update/:counterId", h.Update)
	counters.Put("/increment/:counterId", h.Increment)
	counters.Post("/join", h.Join)
	counters.Put("/remove-shared/:counterId", h.Leave)
}
