package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/michaelgreenl/tally-tracker-server/config"
	"github.com/michaelgreenl/tally-tracker-server/internal/auth/dto"
	"github.com/michaelgreenl/tally-tracker-server/internal/auth/service"
	apperrors "github.com/michaelgreenl/tally-tracker-server/internal/errors"
	"github.com/michaelgreenl/tally-tracker-server/internal/middleware"
	"github.com/michaelgreenl/tally-tracker-server/internal/validation"
)

type AuthHandler struct {
	userService *service.UserService
	cfg         *config.Config
}

func NewAuthHandler(userService *service.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: userService, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	if err := validation.Check(input); err != nil {
		return err
	}

	if _, err := h.userService.Register(c.Context(), input); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	if err := validation.Check(input); err != nil {
		return err
	}

	out, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	// Web clients get the tokens as cookies; native clients read them from
	// the body. With rememberMe the access token is short-lived and paired
	// with a refresh token, otherwise it carries the whole session.
	if out.RefreshToken != "" {
		h.setCookie(c, middleware.AccessTokenCookie, out.AccessToken, h.accessTTL())
		h.setCookie(c, middleware.RefreshTokenCookie, out.RefreshToken, h.refreshTTL())
	} else {
		h.setCookie(c, middleware.AccessTokenCookie, out.AccessToken, h.longAccessTTL())
	}

	return c.JSON(fiber.Map{"success": true, "data": out})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(middleware.RefreshTokenCookie)
	if refreshToken == "" {
		var input dto.RefreshInput
		if err := c.BodyParser(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}

	if refreshToken == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "No refresh token provided")
	}
	// Refresh tokens are uuids; anything else can never match a stored row.
	if uuid.Validate(refreshToken) != nil {
		return apperrors.ErrRefreshTokenInvalid
	}

	pair, err := h.userService.Refresh(c.Context(), refreshToken)
	if err != nil {
		return err
	}

	h.setCookie(c, middleware.AccessTokenCookie, pair.AccessToken, h.accessTTL())
	h.setCookie(c, middleware.RefreshTokenCookie, pair.RefreshToken, h.refreshTTL())

	return c.JSON(fiber.Map{"success": true, "data": pair})
}

// Logout revokes every session of the user behind the refresh cookie and
// clears both cookies regardless of whether a token was found.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies(middleware.RefreshTokenCookie)
	if uuid.Validate(refreshToken) != nil {
		// A malformed cookie identifies no session; clear it and move on.
		refreshToken = ""
	}

	if err := h.userService.Logout(c.Context(), refreshToken); err != nil {
		return err
	}

	h.clearCookie(c, middleware.AccessTokenCookie)
	h.clearCookie(c, middleware.RefreshTokenCookie)

	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	user, err := h.userService.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"user": user}})
}

func (h *AuthHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	if err := validation.Check(input); err != nil {
		return err
	}

	if err := h.userService.Update(c.Context(), middleware.UserID(c), input); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Context(), middleware.UserID(c)); err != nil {
		return err
	}

	h.clearCookie(c, middleware.AccessTokenCookie)
	h.clearCookie(c, middleware.RefreshTokenCookie)

	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) accessTTL() time.Duration {
	return time.Duration(h.cfg.AccessExpiryMin) * time.Minute
}

func (h *AuthHandler) longAccessTTL() time.Duration {
	return time.Duration(h.cfg.LongAccessExpiryMin) * time.Minute
}

func (h *AuthHandler) refreshTTL() time.Duration {
	return time.Duration(h.cfg.RefreshExpiryDays) * 24 * time.Hour
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: h.cfg.CookieSameSite(),
		Path:     "/",
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: h.cfg.CookieSameSite(),
		Path:     "/",
	})
}
