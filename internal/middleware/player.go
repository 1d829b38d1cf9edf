package middleware

import (
	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// EnsurePlayerID reads the caller's player ID from the X-Player-ID header or
// the playerId query parameter and stores it in Locals("playerID").
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		// Header and query values point into fasthttp's reused buffers, and the
		// ID outlives the request as a seat and connection key.
		playerID = utils.CopyString(playerID)
		log.WithFields(log.Fields{"player": playerID, "path": c.Path()}).Debug("player identified")
		c.Locals("playerID", playerID)
		return c.Next()
	}
}
