// Package middleware holds the request plumbing every protected route runs
// through: identity resolution, idempotent-retry deduplication, and the
// error-to-envelope mapping.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/michaelgreenl/tally-tracker-server/internal/auth/service"
)

// ClaimsKey is the fiber.Ctx locals key the verified claims live under.
const ClaimsKey = "claims"

// AccessTokenCookie and RefreshTokenCookie are the cookie names of the web
// client's session credentials.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

type tokenVerifier interface {
	VerifyAccessToken(tokenString string) (*service.Claims, error)
}

// Protect resolves the caller's identity from either the access_token
// cookie (web) or the Authorization header (native); the cookie wins when
// both are present. The signed token is trusted as-is — no store lookup on
// this path.
func Protect(tokens tokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		if cookie := c.Cookies(AccessTokenCookie); cookie != "" {
			token = cookie
		} else if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authenticated",
			})
		}

		claims, err := tokens.VerifyAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
			})
		}

		c.Locals(ClaimsKey, claims)

		return c.Next()
	}
}

// UserID returns the authenticated user's id, or "" when the request did
// not pass Protect.
func UserID(c *fiber.Ctx) string {
	claims, ok := c.Locals(ClaimsKey).(*service.Claims)
	if !ok {
		return ""
	}
	return claims.UserID
}
