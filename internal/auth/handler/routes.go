package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the user/session routes. protect is the session
// middleware; everything identity-mutating or identity-reading sits behind
// it except the credential flows themselves.
func RegisterRoutes(app *fiber.App, h *AuthHandler, protect fiber.Handler) {
	users := app.Group("/users")

	users.Post("/", h.Register)
	users.Post("/login", h.Login)
	users.Post("/refresh", h.Refresh)
	users.Post("/logout", h.Logout)

	users.Get("/check-auth", protect, h.CheckAuth)
	users.Put("/", protect, h.Update)
	users.Delete("/", protect, h.Delete)
}
