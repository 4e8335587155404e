package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/notify"
)

// NotificationsHandler lets the browser poll and dismiss toasts.
type NotificationsHandler struct {
	bus *notify.Bus
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(bus *notify.Bus) *NotificationsHandler {
	return &NotificationsHandler{bus: bus}
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.bus.Active(auth.ClientID(c))})
}

// Dismiss handles DELETE /api/notifications/:id. Dismissing an unknown or
// already-expired id succeeds.
func (h *NotificationsHandler) Dismiss(c *fiber.Ctx) error {
	h.bus.Dismiss(auth.ClientID(c), c.Params("id"))
	return c.JSON(fiber.Map{"data": fiber.Map{"dismissed": true}})
}
