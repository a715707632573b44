package handlers

import (
	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type WaitlistHandler struct {
	s service.WaitlistService
}

func NewWaitlistHandler(s service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{s: s}
}

// Join is the public signup endpoint; repeated joins with the same email are
// accepted silently.
func (h *WaitlistHandler) Join(c *fiber.Ctx) error {
	var req transfer.WaitlistJoinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	if err := h.s.Join(c.Context(), req.Email); err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

func (h *WaitlistHandler) List(c *fiber.Ctx) error {
	status := c.Query("status", "pending")

	entries, err := h.s.List(c.Context(), status)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"entries": entries,
	})
}

func (h *WaitlistHandler) Approve(c *fiber.Ctx) error {
	var req transfer.WaitlistActionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.EntryID == 0 {
		return badRequest(c, "Expected 'entry_id' to be a positive integer")
	}

	result, err := h.s.Approve(c.Context(), req.EntryID, req.GrantPlan)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *WaitlistHandler) Reject(c *fiber.Ctx) error {
	var req transfer.WaitlistActionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.EntryID == 0 {
		return badRequest(c, "Expected 'entry_id' to be a positive integer")
	}

	result, err := h.s.Reject(c.Context(), req.EntryID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *WaitlistHandler) BulkDelete(c *fiber.Ctx) error {
	var req transfer.WaitlistBulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	deleted, err := h.s.BulkDelete(c.Context(), req.EntryIDs, req.Status)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"deleted": deleted,
	})
}
