package domain

import "time"

// ManagedUser is a user account as listed in the admin back-office.
type ManagedUser struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	WalletBalance float64   `json:"wallet_balance"`
	Suspended     bool      `json:"suspended"`
	CreatedAt     time.Time `json:"created_at"`
}

// WalletAdjustment records an admin credit or debit against a user wallet.
type WalletAdjustment struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// InventoryItem is a held pawned item tracked by the back-office.
type InventoryItem struct {
	ID        string    `json:"id"`
	LoanID    string    `json:"loan_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Condition string    `json:"condition"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActivityEntry is one row of the upstream activity log.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
