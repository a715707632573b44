package handlers

import (
	"strconv"
	"strings"

	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/echofluxai/echoflux-api/pkg/ai"
	"github.com/gofiber/fiber/v2"
)

type GenerateHandler struct {
	s      service.GenerationService
	images *ai.ImageClient
}

func NewGenerateHandler(s service.GenerationService, images *ai.ImageClient) *GenerateHandler {
	return &GenerateHandler{s: s, images: images}
}

// nonEmptyStrings reports whether every element is a non-blank string.
func nonEmptyStrings(values []string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func (h *GenerateHandler) Strategy(c *fiber.Ctx) error {
	var req transfer.StrategyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Niche == "" {
		return badRequest(c, "Expected 'niche' to be a non-empty string")
	}
	if req.Goals == "" {
		return badRequest(c, "Expected 'goals' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Strategy(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Critique(c *fiber.Ctx) error {
	var req transfer.CritiqueRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Bio == "" && len(req.Captions) == 0 {
		return badRequest(c, "Expected 'bio' or 'captions' to be provided")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Critique(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Trends(c *fiber.Ctx) error {
	var req transfer.TrendsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Expected 'posts' to be a non-empty array of strings")
	}
	if !nonEmptyStrings(req.Posts) {
		return badRequest(c, "Expected 'posts' to be a non-empty array of strings")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Trends(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) CRMSummary(c *fiber.Ctx) error {
	var req transfer.CRMSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if !nonEmptyStrings(req.Interactions) {
		return badRequest(c, "Expected 'interactions' to be a non-empty array of strings")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.CRMSummary(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) AnalyticsReport(c *fiber.Ctx) error {
	var req transfer.AnalyticsReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Period == "" {
		req.Period = "last 30 days"
	}

	return c.Status(fiber.StatusOK).JSON(h.s.AnalyticsReport(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Autopilot(c *fiber.Ctx) error {
	var req transfer.AutopilotRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Niche == "" {
		return badRequest(c, "Expected 'niche' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Autopilot(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Caption(c *fiber.Ctx) error {
	var req transfer.CaptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Topic == "" {
		return badRequest(c, "Expected 'topic' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Caption(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Reply(c *fiber.Ctx) error {
	var req transfer.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Comment == "" {
		return badRequest(c, "Expected 'comment' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Reply(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Categorize(c *fiber.Ctx) error {
	var req transfer.CategorizeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if !nonEmptyStrings(req.Posts) {
		return badRequest(c, "Expected 'posts' to be a non-empty array of strings")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Categorize(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Hashtags(c *fiber.Ctx) error {
	var req transfer.HashtagsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Topic == "" {
		return badRequest(c, "Expected 'topic' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Hashtags(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Brand(c *fiber.Ctx) error {
	var req transfer.BrandRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Description == "" {
		return badRequest(c, "Expected 'description' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Brand(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) Chatbot(c *fiber.Ctx) error {
	var req transfer.ChatbotRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Message == "" {
		return badRequest(c, "Expected 'message' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Chatbot(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) ImagePrompt(c *fiber.Ctx) error {
	var req transfer.ImagePromptRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Concept == "" {
		return badRequest(c, "Expected 'concept' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.ImagePrompt(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) ContentGap(c *fiber.Ctx) error {
	var req transfer.ContentGapRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if !nonEmptyStrings(req.Posts) {
		return badRequest(c, "Expected 'posts' to be a non-empty array of strings")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.ContentGap(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) CaptionOptimization(c *fiber.Ctx) error {
	var req transfer.CaptionOptimizationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Caption == "" {
		return badRequest(c, "Expected 'caption' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.CaptionOptimization(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) PerformancePrediction(c *fiber.Ctx) error {
	var req transfer.PerformancePredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Caption == "" {
		return badRequest(c, "Expected 'caption' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.PerformancePrediction(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) ContentRepurposing(c *fiber.Ctx) error {
	var req transfer.ContentRepurposingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Content == "" {
		return badRequest(c, "Expected 'content' to be a non-empty string")
	}
	if req.TargetPlatform == "" {
		return badRequest(c, "Expected 'target_platform' to be a non-empty string")
	}

	return c.Status(fiber.StatusOK).JSON(h.s.ContentRepurposing(c.Context(), GetUserID(c), &req))
}

func (h *GenerateHandler) GenerateImage(c *fiber.Ctx) error {
	var req transfer.GenerateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.Prompt == "" {
		return badRequest(c, "Expected 'prompt' to be a non-empty string")
	}
	if req.Size == "" {
		req.Size = "1024x1024"
	}

	url, err := h.images.GenerateImage(c.Context(), req.Prompt, req.Size)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "image generation failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": url,
	})
}

func (h *GenerateHandler) History(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.s.History(c.Context(), GetUserID(c), c.Query("task_type"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": items,
	})
}
