package handlers

import (
	"errors"

	"bloglist/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to response codes. Token failures stay
// generic; validation messages pass through because clients assert on them.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Message,
		})
	case errors.Is(err, services.ErrMissingToken), errors.Is(err, services.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "token missing or invalid",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": services.ErrInvalidCredentials.Error(),
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": services.ErrForbidden.Error(),
		})
	case errors.Is(err, services.ErrBlogNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
