package domain

import "time"

// PawnStatus represents lifecycle states of a pawn request upstream.
type PawnStatus string

const (
	PawnStatusPending   PawnStatus = "PENDING"
	PawnStatusApproved  PawnStatus = "APPROVED"
	PawnStatusValidated PawnStatus = "VALIDATED"
	PawnStatusRejected  PawnStatus = "REJECTED"
	PawnStatusCancelled PawnStatus = "CANCELLED"
)

// PawnRequest is a user's submission of an item for appraisal and loan
// consideration, as reported by the upstream service.
type PawnRequest struct {
	ID             string     `json:"id"`
	ItemName       string     `json:"item_name"`
	Category       string     `json:"category"`
	Description    string     `json:"description"`
	RequestedValue float64    `json:"requested_value"`
	Status         PawnStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
