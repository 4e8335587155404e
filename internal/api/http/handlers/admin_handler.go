package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/api/dto"
	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/backend"
	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
)

// AdminHandler proxies the back-office: user management, wallets,
// inventory, loan lifecycle decisions, and activity logs.
type AdminHandler struct {
	auth    *service.AuthService
	backend *backend.Client
	audit   *service.AuditService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService, client *backend.Client, audit *service.AuditService) *AdminHandler {
	return &AdminHandler{auth: authService, backend: client, audit: audit}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))

	users, err := h.backend.ListUsers(c.UserContext(), token)
	if err != nil {
		return err
	}
	inventory, err := h.backend.ListInventory(c.UserContext(), token)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"user_count":      len(users),
		"inventory_count": len(inventory),
	}})
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	users, err := h.backend.ListUsers(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": users})
}

// SuspendUser handles POST /admin/users/:id/suspend.
func (h *AdminHandler) SuspendUser(c *fiber.Ctx) error {
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	if err := h.backend.SuspendUser(c.UserContext(), token, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"suspended": true}})
}

// ActivateUser handles POST /admin/users/:id/activate.
func (h *AdminHandler) ActivateUser(c *fiber.Ctx) error {
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	if err := h.backend.ActivateUser(c.UserContext(), token, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"activated": true}})
}

// AdjustWallet handles POST /admin/users/:id/wallet.
func (h *AdminHandler) AdjustWallet(c *fiber.Ctx) error {
	var req dto.WalletAdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Amount == 0 {
		return fiber.NewError(http.StatusBadRequest, "non-zero amount required")
	}

	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	user, err := h.backend.AdjustWallet(c.UserContext(), token, domain.WalletAdjustment{
		UserID: c.Params("id"),
		Amount: req.Amount,
		Reason: req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": user})
}

// ListInventory handles GET /admin/inventory.
func (h *AdminHandler) ListInventory(c *fiber.Ctx) error {
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	items, err := h.backend.ListInventory(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateInventory handles PUT /admin/inventory/:id.
func (h *AdminHandler) UpdateInventory(c *fiber.Ctx) error {
	var req dto.InventoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	item, err := h.backend.UpdateInventoryItem(c.UserContext(), token, domain.InventoryItem{
		ID:        c.Params("id"),
		Location:  req.Location,
		Condition: req.Condition,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// ApproveLoan handles POST /admin/pawn-requests/:id/approve.
func (h *AdminHandler) ApproveLoan(c *fiber.Ctx) error {
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	loan, err := h.backend.ApproveLoan(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loan})
}

// ValidateItem handles POST /admin/pawn-requests/:id/validate.
func (h *AdminHandler) ValidateItem(c *fiber.Ctx) error {
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	request, err := h.backend.ValidateLoanItem(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": request})
}

// ForfeitLoan handles POST /admin/loans/:id/forfeit.
func (h *AdminHandler) ForfeitLoan(c *fiber.Ctx) error {
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	loan, err := h.backend.ForfeitLoan(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loan})
}

// ActivityLog handles GET /admin/logs, the upstream activity log.
func (h *AdminHandler) ActivityLog(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	token := h.auth.AdminToken(c.UserContext(), auth.ClientID(c))
	entries, err := h.backend.ListActivityLog(c.UserContext(), token, limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// LocalAuditLog handles GET /admin/logs/local, the gateway's own trail.
func (h *AdminHandler) LocalAuditLog(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	records, err := h.audit.ListRecent(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": records})
}
