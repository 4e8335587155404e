package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/backend"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
)

// ShopHandler proxies the forfeited-item browsing view.
type ShopHandler struct {
	auth    *service.AuthService
	backend *backend.Client
}

// NewShopHandler constructs handler.
func NewShopHandler(authService *service.AuthService, client *backend.Client) *ShopHandler {
	return &ShopHandler{auth: authService, backend: client}
}

// List handles GET /shop.
func (h *ShopHandler) List(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	items, err := h.backend.ListShopItems(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /shop/:id.
func (h *ShopHandler) Get(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	item, err := h.backend.GetShopItem(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}
