package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/michaelgreenl/tally-tracker-server/internal/counter/dto"
	"github.com/michaelgreenl/tally-tracker-server/internal/counter/service"
	apperrors "github.com/michaelgreenl/tally-tracker-server/internal/errors"
	"github.com/michaelgreenl/tally-tracker-server/internal/middleware"
	"github.com/michaelgreenl/tally-tracker-server/internal/validation"
)

type CounterHandler struct {
	counterService *service.CounterService
}

func NewCounterHandler(counterService *service.CounterService) *CounterHandler {
	return &CounterHandler{counterService: counterService}
}

func (h *CounterHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateCounterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	if err := validation.Check(input); err != nil {
		return err
	}

	counter, err := h.counterService.Create(c.Context(), middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Counter created successfully",
		"data":    fiber.Map{"counter": counter},
	})
}

// counterParam rejects ids that cannot match the uuid-typed counters.id
// column; a malformed id reads the same as an absent counter.
func counterParam(c *fiber.Ctx) (string, error) {
	id := c.Params("counterId")
	if uuid.Validate(id) != nil {
		return "", apperrors.ErrCounterNotFound
	}
	return id, nil
}

func (h *CounterHandler) Get(c *fiber.Ctx) error {
	id, err := counterParam(c)
	if err != nil {
		return err
	}

	counter, err := h.counterService.Get(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"counter": counter}})
}

func (h *CounterHandler) List(c *fiber.Ctx) error {
	counters, err := h.counterService.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"counters": counters}})
}

func (h *CounterHandler) Delete(c *fiber.Ctx) error {
	id, err := counterParam(c)
	if err != nil {
		return err
	}

	if err := h.counterService.Delete(c.Context(), id, middleware.UserID(c)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *CounterHandler) Update(c *fiber.Ctx) error {
	id, err := counterParam(c)
	if err != nil {
		return err
	}

	var input dto.UpdateCounterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	if err := validation.Check(input); err != nil {
		return err
	}

	counter, err := h.counterService.Update(c.Context(), id, middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Counter updated successfully",
		"data":    fiber.Map{"counter": counter},
	})
}

func (h *CounterHandler) Increment(c *fiber.Ctx) error {
	id, err := counterParam(c)
	if err != nil {
		return err
	}

	var input dto.IncrementCounterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	if err := validation.Check(input); err != nil {
		return err
	}

	counter, err := h.counterService.Increment(c.Context(), id, middleware.UserID(c), *input.Amount)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Counter incremented successfully",
		"data":    fiber.Map{"counter": counter},
	})
}

func (h *CounterHandler) Join(c *fiber.Ctx) error {
	var input dto.JoinCounterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	if err := validation.Check(input); err != nil {
		return err
	}

	result, err := h.counterService.Join(c.Context(), middleware.UserID(c), input.InviteCode)
	if err != nil {
		return err
	}

	if result.AlreadyJoined {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Already joined",
			"data":    fiber.Map{"counter": result.Counter},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Share counter successfully joined",
		"data":    fiber.Map{"counter": result.Counter},
	})
}

func (h *CounterHandler) Leave(c *fiber.Ctx) error {
	id, err := counterParam(c)
	if err != nil {
		return err
	}

	if err := h.counterService.Leave(c.Context(), id, middleware.UserID(c)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
