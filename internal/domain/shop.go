package domain

import "time"

// ShopItem is a forfeited item offered for sale in the browsing view.
type ShopItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	ListedAt    time.Time `json:"listed_at"`
}
