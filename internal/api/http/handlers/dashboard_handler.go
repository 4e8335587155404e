package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/backend"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
)

// DashboardHandler serves page data for the user dashboard and profile.
type DashboardHandler struct {
	auth    *service.AuthService
	backend *backend.Client
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(authService *service.AuthService, client *backend.Client) *DashboardHandler {
	return &DashboardHandler{auth: authService, backend: client}
}

// Dashboard handles GET /dashboard. It aggregates the user's pawn requests
// and loans into one payload. An admin reaching this page through the
// guard's loop-prevention exclusion gets an empty dashboard, not an error.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	clientID := auth.ClientID(c)
	token := h.auth.UserToken(c.UserContext(), clientID)
	if token == "" {
		return c.JSON(fiber.Map{"data": fiber.Map{"pawn_requests": []any{}, "loans": []any{}}})
	}

	requests, err := h.backend.ListPawnRequests(c.UserContext(), token)
	if err != nil {
		return err
	}
	loans, err := h.backend.ListLoans(c.UserContext(), token)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"pawn_requests": requests,
		"loans":         loans,
	}})
}

// Profile handles GET /profile from the cached session profile.
func (h *DashboardHandler) Profile(c *fiber.Ctx) error {
	state := h.auth.Snapshot(c.UserContext(), auth.ClientID(c))
	profile := state.UserProfile
	if profile == nil {
		profile = state.AdminProfile
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"profile": profile}})
}
