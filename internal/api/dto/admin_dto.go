package dto

// WalletAdjustRequest payload for a wallet credit or debit.
type WalletAdjustRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// InventoryUpdateRequest payload for held item bookkeeping.
type InventoryUpdateRequest struct {
	Location  string `json:"location"`
	Condition string `json:"condition"`
}
