package backend

import (
	"context"
	"net/http"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
)

// PawnSubmission is the payload for a new pawn request.
type PawnSubmission struct {
	ItemName       string  `json:"item_name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	RequestedValue float64 `json:"requested_value"`
}

// SubmitPawnRequest submits an item for appraisal.
func (c *Client) SubmitPawnRequest(ctx context.Context, token string, in PawnSubmission) (*domain.PawnRequest, error) {
	var out domain.PawnRequest
	if err := c.do(ctx, http.MethodPost, "/api/pawn-requests", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPawnRequests returns the caller's pawn requests.
func (c *Client) ListPawnRequests(ctx context.Context, token string) ([]domain.PawnRequest, error) {
	var out []domain.PawnRequest
	if err := c.do(ctx, http.MethodGet, "/api/pawn-requests", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPawnRequest returns one pawn request by id.
func (c *Client) GetPawnRequest(ctx context.Context, token, id string) (*domain.PawnRequest, error) {
	var out domain.PawnRequest
	if err := c.do(ctx, http.MethodGet, idPath("/api/pawn-requests/%s", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelPawnRequest withdraws a pending pawn request.
func (c *Client) CancelPawnRequest(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, idPath("/api/pawn-requests/%s/cancel", id), token, nil, nil)
}

// ListLoans returns the caller's loans.
func (c *Client) ListLoans(ctx context.Context, token string) ([]domain.Loan, error) {
	var out []domain.Loan
	if err := c.do(ctx, http.MethodGet, "/api/loans", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLoan returns one loan by id.
func (c *Client) GetLoan(ctx context.Context, token, id string) (*domain.Loan, error) {
	var out domain.Loan
	if err := c.do(ctx, http.MethodGet, idPath("/api/loans/%s", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RedeemLoan pays off a loan and reclaims the item.
func (c *Client) RedeemLoan(ctx context.Context, token, id string) (*domain.Loan, error) {
	var out domain.Loan
	if err := c.do(ctx, http.MethodPost, idPath("/api/loans/%s/redeem", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RenewLoan extends a loan's term; interest math is upstream's concern.
func (c *Client) RenewLoan(ctx context.Context, token, id string) (*domain.Loan, error) {
	var out domain.Loan
	if err := c.do(ctx, http.MethodPost, idPath("/api/loans/%s/renew", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListShopItems returns forfeited items offered for sale.
func (c *Client) ListShopItems(ctx context.Context, token string) ([]domain.ShopItem, error) {
	var out []domain.ShopItem
	if err := c.do(ctx, http.MethodGet, "/api/shop/items", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetShopItem returns one forfeited item by id.
func (c *Client) GetShopItem(ctx context.Context, token, id string) (*domain.ShopItem, error) {
	var out domain.ShopItem
	if err := c.do(ctx, http.MethodGet, idPath("/api/shop/items/%s", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
