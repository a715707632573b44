package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	cfg "github.com/echofluxai/echoflux-api/configs"
	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/gofiber/fiber/v2"
)

type SocialHandler struct {
	s   service.SocialService
	cfg cfg.Config
}

func NewSocialHandler(cfg cfg.Config, s service.SocialService) *SocialHandler {
	return &SocialHandler{s: s, cfg: cfg}
}

// Connect redirects to Google consent with the YouTube read scope added on
// top of the profile scopes.
func (h *SocialHandler) Connect(c *fiber.Ctx) error {
	authURL := "https://accounts.google.com/o/oauth2/v2/auth"
	params := url.Values{}
	params.Add("client_id", h.cfg.GoogleClientID)
	params.Add("redirect_uri", h.cfg.GoogleRedirectURI)
	params.Add("response_type", "code")
	params.Add("scope", "https://www.googleapis.com/auth/userinfo.profile https://www.googleapis.com/auth/userinfo.email https://www.googleapis.com/auth/youtube.readonly")
	params.Add("access_type", "offline")
	params.Add("prompt", "consent")

	return c.Redirect(fmt.Sprintf("%s?%s", authURL, params.Encode()))
}

func (h *SocialHandler) ConnectCallback(c *fiber.Ctx) error {
	code := c.Query("code")

	if err := h.s.ConnectCallback(c.Context(), code, GetUserID(c)); err != nil {
		return badRequest(c, "account connection failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

func (h *SocialHandler) Stats(c *fiber.Ctx) error {
	stats := h.s.GetStats(c.Context(), GetUserID(c))
	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *SocialHandler) List(c *fiber.Ctx) error {
	accounts, err := h.s.List(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"accounts": accounts,
	})
}

func (h *SocialHandler) Delete(c *fiber.Ctx) error {
	accountID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Expected 'id' to be a positive integer")
	}

	if err := h.s.Delete(c.Context(), GetUserID(c), accountID); err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
