package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobfit/matching-api/internal/models"
	"jobfit/matching-api/internal/services"
)

const userIDKey = "userID"

// RequireAuth verifies the Bearer token and stashes the authenticated
// user id in the request context.
func RequireAuth(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error: "Missing bearer token",
			})
		}

		userID, err := authService.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error: "Invalid or expired token",
			})
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	userID, _ := c.Locals(userIDKey).(uuid.UUID)
	return userID
}
