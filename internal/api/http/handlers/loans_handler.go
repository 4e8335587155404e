package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/backend"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
)

// LoansHandler proxies loan views and user-side lifecycle actions.
type LoansHandler struct {
	auth    *service.AuthService
	backend *backend.Client
}

// NewLoansHandler constructs handler.
func NewLoansHandler(authService *service.AuthService, client *backend.Client) *LoansHandler {
	return &LoansHandler{auth: authService, backend: client}
}

// List handles GET /loans.
func (h *LoansHandler) List(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	loans, err := h.backend.ListLoans(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loans})
}

// Get handles GET /loans/:id.
func (h *LoansHandler) Get(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	loan, err := h.backend.GetLoan(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loan})
}

// Redeem handles POST /loans/:id/redeem.
func (h *LoansHandler) Redeem(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	loan, err := h.backend.RedeemLoan(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loan})
}

// Renew handles POST /loans/:id/renew.
func (h *LoansHandler) Renew(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	loan, err := h.backend.RenewLoan(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loan})
}
