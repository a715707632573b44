package handlers

import (
	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type BioHandler struct {
	s service.BioService
}

func NewBioHandler(s service.BioService) *BioHandler {
	return &BioHandler{s: s}
}

// PublicPage is unauthenticated; it serves the link-in-bio page by username.
func (h *BioHandler) PublicPage(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return badRequest(c, "Expected 'username' to be a non-empty string")
	}

	view, err := h.s.PublicPage(c.Context(), username)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "profile not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

func (h *BioHandler) Update(c *fiber.Ctx) error {
	var req transfer.BioPageUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	if err := h.s.Update(c.Context(), GetUserID(c), &req); err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
