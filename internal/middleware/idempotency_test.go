package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelgreenl/tally-tracker-server/internal/auth/service"
	"github.com/michaelgreenl/tally-tracker-server/internal/idempotency"
	"github.com/michaelgreenl/tally-tracker-server/internal/middleware"
	"github.com/michaelgreenl/tally-tracker-server/internal/mocks"
)

func newIdempotencyApp(store idempotency.Store, userID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals(middleware.ClaimsKey, &service.Claims{UserID: userID})
		}
		return c.Next()
	})
	app.Use(middleware.Idempotency(store))
	app.Post("/mutate", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	return app
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIdempotencyStore(ctrl)
	app := newIdempotencyApp(store, "user-123")

	// No store calls expected at all.
	resp, err := app.Test(httptest.NewRequest("POST", "/mutate", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestIdempotency_NoIdentityPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIdempotencyStore(ctrl)
	app := newIdempotencyApp(store, "")

	req := httptest.NewRequest("POST", "/mutate", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "key-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestIdempotency_FirstRequestRecordsKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIdempotencyStore(ctrl)
	app := newIdempotencyApp(store, "user-123")

	store.EXPECT().Get(gomock.Any(), "key-1", "user-123").Return(nil, nil)
	store.EXPECT().Create(gomock.Any(), "key-1", "user-123").Return(nil)

	req := httptest.NewRequest("POST", "/mutate", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "key-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestIdempotency_DuplicateShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIdempotencyStore(ctrl)
	app := newIdempotencyApp(store, "user-123")

	seen := &idempotency.Log{Key: "key-1", UserID: "user-123", CreatedAt: time.Now()}
	store.EXPECT().Get(gomock.Any(), "key-1", "user-123").Return(seen, nil)

	req := httptest.NewRequest("POST", "/mutate", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "key-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestIdempotency_InsertRaceShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIdempotencyStore(ctrl)
	app := newIdempotencyApp(store, "user-123")

	// Two identical requests race: this one loses the insert, which is as
	// good a confirmation of duplication as finding the record.
	store.EXPECT().Get(gomock.Any(), "key-1", "user-123").Return(nil, nil)
	store.EXPECT().Create(gomock.Any(), "key-1", "user-123").Return(idempotency.ErrDuplicateKey)

	req := httptest.NewRequest("POST", "/mutate", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "key-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestIdempotency_StoreFailureFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIdempotencyStore(ctrl)
	app := newIdempotencyApp(store, "user-123")

	t.Run("lookup failure", func(t *testing.T) {
		store.EXPECT().Get(gomock.Any(), "key-1", "user-123").Return(nil, errors.New("store down"))

		req := httptest.NewRequest("POST", "/mutate", nil)
		req.Header.Set(middleware.IdempotencyKeyHeader, "key-1")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("record failure", func(t *testing.T) {
		store.EXPECT().Get(gomock.Any(), "key-1", "user-123").Return(nil, nil)
		store.EXPECT().Create(gomock.Any(), "key-1", "user-123").Return(errors.New("store down"))

		req := httptest.NewRequest("POST", "/mutate", nil)
		req.Header.Set(middleware.IdempotencyKeyHeader, "key-1")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
}

func TestIdempotency_KeysAreScopedPerUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIdempotencyStore(ctrl)
	app := newIdempotencyApp(store, "user-456")

	// Same key, different user: the store is asked about this user only.
	store.EXPECT().Get(gomock.Any(), "key-1", "user-456").Return(nil, nil)
	store.EXPECT().Create(gomock.Any(), "key-1", "user-456").Return(nil)

	req := httptest.NewRequest("POST", "/mutate", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "key-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}
