package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/api/dto"
	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
)

// AdminAuthHandler exposes admin-scoped login and logout.
type AdminAuthHandler struct {
	auth *service.AuthService
}

// NewAdminAuthHandler constructs handler.
func NewAdminAuthHandler(authService *service.AuthService) *AdminAuthHandler {
	return &AdminAuthHandler{auth: authService}
}

// Login handles POST /api/admin/login.
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	profile, err := h.auth.LoginAdmin(c.UserContext(), auth.ClientID(c), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"profile": profile, "role": "ADMIN"}})
}

// Logout handles POST /api/admin/logout.
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout(c.UserContext(), auth.ClientID(c))
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}
