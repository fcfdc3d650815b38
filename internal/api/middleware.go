package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/smoldovan/lunchroom/internal/models"
)

const contextUserKey = "current_user"

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c)
	if rawToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	userID, _, err := handler.authService.ParseToken(rawToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	// admin status comes from the store, not the token, so a demotion takes
	// effect before the token expires
	user, err := handler.authService.FindByID(userID)
	if err != nil || !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	if !currentUser(c).IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
	return c.Next()
}

func currentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(contextUserKey).(models.User)
	return user
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
