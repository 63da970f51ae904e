package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/michaelgreenl/tally-tracker-server/internal/errors"
)

// ErrorHandler is the app-level Fiber error handler. Domain errors map to
// their taxonomy status and the uniform {success:false, message} envelope;
// anything unexpected is logged in full and surfaced only as a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  vErr.Errors,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
		})
	}

	status := apperrors.Status(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log.Printf("[Error] %s %s: %v", c.Method(), c.Path(), err)
		message = "Internal Server Error"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
