package realtime

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/michaelgreenl/tally-tracker-server/internal/auth/service"
	"github.com/michaelgreenl/tally-tracker-server/internal/middleware"
)

type tokenVerifier interface {
	VerifyAccessToken(tokenString string) (*service.Claims, error)
}

// RegisterRoutes mounts the websocket endpoint. The client authenticates
// with its access token — cookie for web, `token` query param for native
// clients that cannot set headers on a websocket dial — and is joined to
// its own user-id room only.
func RegisterRoutes(app *fiber.App, hub *Hub, tokens tokenVerifier) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		token := c.Cookies(middleware.AccessTokenCookie)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		claims, err := tokens.VerifyAccessToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals("userID", claims.UserID)
		return c.Next()
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("userID").(string)
		if userID == "" {
			_ = conn.Close()
			return
		}

		c := newClient(hub, userID, conn)
		hub.Join(userID, c)
		go c.writePump()
		c.readPump()
	}))
}
