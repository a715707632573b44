package middleware

import (
	"log"
	"strings"

	cfg "github.com/echofluxai/echoflux-api/configs"
	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/echofluxai/echoflux-api/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthMiddleware struct {
	cfg cfg.Config
	as  service.AuthService
	us  service.UserService
}

func NewAuthMiddleware(cfg cfg.Config, as service.AuthService, us service.UserService) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg, as: as, us: us}
}

// AuthMiddleware accepts either the session cookie or an
// Authorization: Bearer token carrying the same JWT.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)

		if tokenString == "" {
			header := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing credentials",
			})
		}

		claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1, // Delete cookie
			})

			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}

// AdminMiddleware gates the waitlist admin surface behind the allow-listed
// admin emails. Runs after AuthMiddleware.
func (m *AuthMiddleware) AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing credentials",
			})
		}

		user, err := m.us.GetUserInfo(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid user",
			})
		}

		if !m.as.IsAdmin(user.Email) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}

		return c.Next()
	}
}
