package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
)

// ListUsers returns user accounts for the back-office.
func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.ManagedUser, error) {
	var out []domain.ManagedUser
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SuspendUser suspends a user account.
func (c *Client) SuspendUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, idPath("/api/admin/users/%s/suspend", id), token, nil, nil)
}

// ActivateUser reactivates a suspended user account.
func (c *Client) ActivateUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, idPath("/api/admin/users/%s/activate", id), token, nil, nil)
}

// AdjustWallet credits or debits a user wallet.
func (c *Client) AdjustWallet(ctx context.Context, token string, adj domain.WalletAdjustment) (*domain.ManagedUser, error) {
	var out domain.ManagedUser
	path := idPath("/api/admin/users/%s/wallet", adj.UserID)
	if err := c.do(ctx, http.MethodPost, path, token, adj, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInventory returns held items tracked by the back-office.
func (c *Client) ListInventory(ctx context.Context, token string) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	if err := c.do(ctx, http.MethodGet, "/api/admin/inventory", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInventoryItem updates the location/condition of a held item.
func (c *Client) UpdateInventoryItem(ctx context.Context, token string, item domain.InventoryItem) (*domain.InventoryItem, error) {
	var out domain.InventoryItem
	path := idPath("/api/admin/inventory/%s", item.ID)
	if err := c.do(ctx, http.MethodPut, path, token, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveLoan approves a pending pawn request into a loan.
func (c *Client) ApproveLoan(ctx context.Context, token, pawnRequestID string) (*domain.Loan, error) {
	var out domain.Loan
	path := idPath("/api/admin/pawn-requests/%s/approve", pawnRequestID)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateLoanItem marks a pawned item as physically validated.
func (c *Client) ValidateLoanItem(ctx context.Context, token, pawnRequestID string) (*domain.PawnRequest, error) {
	var out domain.PawnRequest
	path := idPath("/api/admin/pawn-requests/%s/validate", pawnRequestID)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForfeitLoan forfeits an overdue loan, moving its item to the shop.
func (c *Client) ForfeitLoan(ctx context.Context, token, loanID string) (*domain.Loan, error) {
	var out domain.Loan
	path := idPath("/api/admin/loans/%s/forfeit", loanID)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListActivityLog returns the upstream activity log, newest first.
func (c *Client) ListActivityLog(ctx context.Context, token string, limit int) ([]domain.ActivityEntry, error) {
	path := "/api/admin/activity-log"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []domain.ActivityEntry
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
