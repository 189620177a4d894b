package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequireGameID rejects requests whose :gameId parameter is not a uuid and
// stores the normalized id in locals under "gameID".
func RequireGameID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("gameId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID must be a uuid",
			})
		}

		c.Locals("gameID", id.String())
		return c.Next()
	}
}
