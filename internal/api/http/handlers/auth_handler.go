package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/api/dto"
	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
)

// AuthHandler exposes login, register, and logout for regular users.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	profile, err := h.auth.LoginUser(c.UserContext(), auth.ClientID(c), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"profile": profile, "role": "USER"}})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username, email, password required")
	}

	profile, err := h.auth.RegisterUser(c.UserContext(), auth.ClientID(c), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"profile": profile, "role": "USER"}})
}

// Logout handles POST /api/auth/logout. Local state is cleared even when
// the upstream teardown fails.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout(c.UserContext(), auth.ClientID(c))
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}
