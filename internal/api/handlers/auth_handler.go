package handlers

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	cfg "github.com/echofluxai/echoflux-api/configs"
	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/echofluxai/echoflux-api/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	s   service.AuthService
	w   service.WaitlistService
	cfg cfg.Config
}

func NewAuthHandler(cfg cfg.Config, s service.AuthService, w service.WaitlistService) *AuthHandler {
	return &AuthHandler{s: s, w: w, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	authURL := "https://accounts.google.com/o/oauth2/v2/auth"
	params := url.Values{}
	params.Add("client_id", h.cfg.GoogleClientID)
	params.Add("redirect_uri", h.cfg.GoogleRedirectURI)
	params.Add("response_type", "code")
	params.Add("scope", "https://www.googleapis.com/auth/userinfo.profile https://www.googleapis.com/auth/userinfo.email")
	params.Add("state", c.Query("invite_code"))
	params.Add("access_type", "offline")

	fullURL := fmt.Sprintf("%s?%s", authURL, params.Encode())
	return c.Redirect(fullURL)
}

func (h *AuthHandler) LoginCallbackHandler(c *fiber.Ctx) error {
	code := c.Query("code")

	userID, err := h.s.LoginCallback(c.Context(), code)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	// An invite code rides through the OAuth state parameter; a failed
	// redemption does not block login.
	if inviteCode := c.Query("state"); inviteCode != "" {
		if _, err := h.w.Redeem(c.Context(), inviteCode, userID); err != nil {
			slog.Info("invite redemption failed: " + err.Error())
		}
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, fmt.Sprintf("%d", userID), 24*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   false,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
	})

	return c.Redirect(h.cfg.FrontendURL, fiber.StatusTemporaryRedirect)
}

// RedeemInvite lets an already-signed-in user apply an invite code.
func (h *AuthHandler) RedeemInvite(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Unable to parse json")
	}
	if req.InviteCode == "" {
		return badRequest(c, "Expected 'invite_code' to be a non-empty string")
	}

	plan, err := h.w.Redeem(c.Context(), req.InviteCode, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"plan": plan,
	})
}
