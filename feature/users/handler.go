package users

import (
	"errors"

	"pantry-manager/core/logger"
	"pantry-manager/feature/users/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for accounts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the public account routes. These are mounted
// before the auth middleware: you can't hold a token yet.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/auth")
	group.Post("/register", h.HandleRegister)
	group.Post("/login", h.HandleLogin)
}

// HandleRegister creates a new account.
// @Summary Register
// @Description Create a new account. The username becomes the owner key for all collections.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Credentials"
// @Success 201 {object} map[string]string "Created"
// @Failure 409 {object} map[string]string "Username taken"
// @Failure 422 {object} map[string]string "Missing fields"
// @Router /auth/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	err := h.service.Register(c.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUserExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "registration failed"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "registered"})
}

// HandleLogin verifies credentials and returns a session token.
// @Summary Login
// @Description Verify credentials and issue a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse "Token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, err := h.service.Login(c.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrInvalidCredentials.Error()})
	case err != nil:
		l.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}

	return c.JSON(models.LoginResponse{Token: token, Username: req.Username})
}
