package handlers

import (
	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type MediaHandler struct {
	s service.MediaService
}

func NewMediaHandler(s service.MediaService) *MediaHandler {
	return &MediaHandler{s: s}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Unable to parse multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return badRequest(c, "Expected 'files' to contain at least one file")
	}

	result, items, err := h.s.Upload(c.Context(), GetUserID(c), c.FormValue("folder_id"), files)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"result": result,
		"items":  items,
	})
}

func (h *MediaHandler) List(c *fiber.Ctx) error {
	items, err := h.s.List(c.Context(), GetUserID(c), c.Query("folder_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	// Tags are normalized to an array here; rows written by older clients
	// stored them as a keyed object.
	views := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		views = append(views, fiber.Map{
			"id":         item.ID,
			"url":        item.URL,
			"file_name":  item.FileName,
			"media_type": item.MediaType,
			"file_size":  item.FileSize,
			"folder_id":  item.FolderID,
			"tags":       h.s.ItemTags(item),
			"created_at": item.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": views,
	})
}

func (h *MediaHandler) CreateFolder(c *fiber.Ctx) error {
	var req transfer.FolderCreation
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}

	folder, err := h.s.CreateFolder(c.Context(), GetUserID(c), req.Name)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(folder)
}

func (h *MediaHandler) ListFolders(c *fiber.Ctx) error {
	folders, err := h.s.ListFolders(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"folders": folders,
	})
}

func (h *MediaHandler) RenameFolder(c *fiber.Ctx) error {
	var req transfer.FolderRename
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.FolderID == "" {
		return badRequest(c, "Expected 'folder_id' to be a non-empty string")
	}

	if err := h.s.RenameFolder(c.Context(), GetUserID(c), req.FolderID, req.Name); err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

func (h *MediaHandler) DeleteFolder(c *fiber.Ctx) error {
	folderID := c.Params("id")
	if folderID == "" {
		return badRequest(c, "Expected 'id' to be a non-empty string")
	}

	if err := h.s.DeleteFolder(c.Context(), GetUserID(c), folderID); err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

func (h *MediaHandler) BulkMove(c *fiber.Ctx) error {
	var req transfer.BulkMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if len(req.ItemIDs) == 0 {
		return badRequest(c, "Expected 'item_ids' to be a non-empty array of strings")
	}

	result := h.s.BulkMove(c.Context(), GetUserID(c), req.ItemIDs, req.FolderID)
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *MediaHandler) BulkDelete(c *fiber.Ctx) error {
	var req transfer.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if len(req.ItemIDs) == 0 {
		return badRequest(c, "Expected 'item_ids' to be a non-empty array of strings")
	}

	result := h.s.BulkDelete(c.Context(), GetUserID(c), req.ItemIDs)
	return c.Status(fiber.StatusOK).JSON(result)
}
