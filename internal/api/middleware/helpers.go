package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals("user_id").(string)
	userID, _ := strconv.Atoi(v)
	return int64(userID)
}
