package middleware

import (
	"log"

	"bloglist/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the Locals key under which AuthRequired stores the
// authenticated *models.User.
const PrincipalKey = "principal"

// AuthRequired is a Fiber middleware that resolves the bearer token to a
// user. Both a missing credential and a failed verification answer with the
// same generic 401 body; the reason is only logged.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := authService.Authenticate(c.Get("Authorization"))
		if err != nil {
			log.Printf("Authentication failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token missing or invalid",
			})
		}

		// Store the principal in Fiber context for subsequent handlers
		c.Locals(PrincipalKey, principal)

		return c.Next()
	}
}
