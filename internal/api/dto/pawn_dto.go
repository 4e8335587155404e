package dto

// PawnSubmitRequest payload for a new pawn request.
type PawnSubmitRequest struct {
	ItemName       string  `json:"item_name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	RequestedValue float64 `json:"requested_value"`
}
