package handlers

import (
	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/gofiber/fiber/v2"
)

type UsageHandler struct {
	s service.UsageService
}

func NewUsageHandler(s service.UsageService) *UsageHandler {
	return &UsageHandler{s: s}
}

func (h *UsageHandler) Summary(c *fiber.Ctx) error {
	summaries, err := h.s.Summary(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tiers": summaries,
	})
}
