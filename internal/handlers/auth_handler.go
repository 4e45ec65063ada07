package handlers

import (
	"fmt"
	"log"

	"bloglist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user and login routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/users", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Field '%s' is required", validationErrors[0].Field()),
		})
	}

	user, err := h.authService.Register(req.Username, req.Name, req.Password)
	if err != nil {
		log.Printf("Error registering user %s: %v", req.Username, err)
		return respondError(c, err)
	}

	// PasswordHash carries no json tag, so the hash never leaves the server.
	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a signed token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Field '%s' is required", validationErrors[0].Field()),
		})
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		log.Printf("Login failed for user %s: %v", req.Username, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"token":    token,
		"username": user.Username,
		"name":     user.Name,
	})
}
