// Package health exposes the liveness endpoint.
package health

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func RegisterRoutes(app *fiber.App, db pinger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.Ping(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "database unreachable")
		}
		return c.JSON(fiber.Map{"success": true, "message": "ok"})
	})
}
