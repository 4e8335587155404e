package domain

import "time"

// LoanStatus represents lifecycle states of a loan upstream.
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "ACTIVE"
	LoanStatusRedeemed  LoanStatus = "REDEEMED"
	LoanStatusRenewed   LoanStatus = "RENEWED"
	LoanStatusForfeited LoanStatus = "FORFEITED"
)

// Loan is an active cash advance secured by a validated item. All loan math
// (interest, due dates) is computed upstream; the gateway only relays it.
type Loan struct {
	ID            string     `json:"id"`
	PawnRequestID string     `json:"pawn_request_id"`
	ItemName      string     `json:"item_name"`
	Principal     float64    `json:"principal"`
	InterestRate  float64    `json:"interest_rate"`
	TotalDue      float64    `json:"total_due"`
	Status        LoanStatus `json:"status"`
	DueDate       time.Time  `json:"due_date"`
	CreatedAt     time.Time  `json:"created_at"`
}
