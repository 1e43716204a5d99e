package domain

import "time"

// StockEntry tracks the on-hand quantity of one toy. There is exactly
// one entry per toy (upsert-on-toy) and quantity never goes below zero.
type StockEntry struct {
	ID       string `json:"id"`
	ToyID    string `json:"toyId"`
	Toy      *Toy   `json:"toy,omitempty"`
	Quantity int    `json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StockLine is one toy/quantity pair in a batch stock mutation.
type StockLine struct {
	ToyID    string `json:"toy"`
	Quantity int    `json:"quantity"`
}

// Shortfall describes one cart line that stock cannot satisfy.
type Shortfall struct {
	ToyID     string `json:"toyId"`
	Message   string `json:"message"`
	Available int    `json:"availableQuantity"`
	Requested int    `json:"requestedQuantity"`
}
