package domain

import "time"

// SchoolOrderLine is one toy/quantity pair dispatched to a school.
type SchoolOrderLine struct {
	ToyID    string `json:"toy"`
	Toy      *Toy   `json:"toyDetails,omitempty"`
	Quantity int    `json:"quantity"`
}

// SchoolOrder is a dispatch of toys from inventory directly to a
// school. Its lifecycle is independent of VendorOrder.
type SchoolOrder struct {
	ID               string            `json:"id"`
	SchoolID         string            `json:"school"`
	Lines            []SchoolOrderLine `json:"listOfToysSentLink"`
	DateOfDispatch   string            `json:"dateOfDispatch,omitempty"`
	ModeOfDispatch   string            `json:"modeOfDispatch,omitempty"`
	TrackingDetails  string            `json:"trackingDetails,omitempty"`
	DateOfDelivery   string            `json:"dateOfDelivery,omitempty"`
	PhotosVideosLink string            `json:"photosVideosLink,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
