package domain

import "time"

// OtherProduct is a miscellaneous line item attached to a vendor order
// by reference (packaging, stationery, anything outside the catalog).
type OtherProduct struct {
	ID       string `json:"id"`
	OrderID  string `json:"order"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
