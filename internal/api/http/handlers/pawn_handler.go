package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/api/dto"
	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/backend"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
)

// PawnHandler proxies pawn request operations for the logged-in user.
type PawnHandler struct {
	auth    *service.AuthService
	backend *backend.Client
}

// NewPawnHandler constructs handler.
func NewPawnHandler(authService *service.AuthService, client *backend.Client) *PawnHandler {
	return &PawnHandler{auth: authService, backend: client}
}

// Submit handles POST /pawn.
func (h *PawnHandler) Submit(c *fiber.Ctx) error {
	var req dto.PawnSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ItemName == "" || req.RequestedValue <= 0 {
		return fiber.NewError(http.StatusBadRequest, "item name and positive requested value required")
	}

	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	created, err := h.backend.SubmitPawnRequest(c.UserContext(), token, backend.PawnSubmission{
		ItemName:       req.ItemName,
		Category:       req.Category,
		Description:    req.Description,
		RequestedValue: req.RequestedValue,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// List handles GET /pawn.
func (h *PawnHandler) List(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	requests, err := h.backend.ListPawnRequests(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requests})
}

// Get handles GET /pawn/:id.
func (h *PawnHandler) Get(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	request, err := h.backend.GetPawnRequest(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": request})
}

// Cancel handles POST /pawn/:id/cancel.
func (h *PawnHandler) Cancel(c *fiber.Ctx) error {
	token := h.auth.UserToken(c.UserContext(), auth.ClientID(c))
	if err := h.backend.CancelPawnRequest(c.UserContext(), token, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"cancelled": true}})
}
