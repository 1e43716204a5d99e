package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/toybridge/toybridge-api/internal/domain"
)

var (
	errInvalidParty  = errors.New("from and to must be one of vendor, ngo, school")
	errInvalidStatus = errors.New("status must be one of PENDING, PROCESSING, DISPATCHED, DELIVERED, CANCELLED")
)

type CartItemPayload struct {
	ToyID    string `json:"toyId"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
	Brand    string `json:"brand"`
	SubBrand string `json:"subBrand"`
}

type PlaceVendorOrderRequest struct {
	Cart     []CartItemPayload `json:"cart"`
	From     string            `json:"from"`
	To       string            `json:"to"`
	SchoolID *string           `json:"schoolId"`
}

func (req *PlaceVendorOrderRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Cart, validation.Required),
		validation.Field(&req.From, validation.Required),
		validation.Field(&req.To, validation.Required),
	)
	if err != nil {
		return err
	}

	if !domain.PartyType(req.From).IsValid() || !domain.PartyType(req.To).IsValid() {
		return errInvalidParty
	}

	return nil
}

func (req *PlaceVendorOrderRequest) CartItems() []domain.CartItem {
	items := make([]domain.CartItem, 0, len(req.Cart))
	for _, p := range req.Cart {
		items = append(items, domain.CartItem{
			ToyID:    p.ToyID,
			Quantity: p.Quantity,
			Price:    p.Price,
			Brand:    p.Brand,
			SubBrand: p.SubBrand,
		})
	}

	return items
}

type OrderLinePayload struct {
	ToyID    string `json:"toy"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

type StatusEventPayload struct {
	Timestamp     string `json:"timestamps"`
	PersonName    string `json:"personName"`
	ContactNumber string `json:"contactNumber"`
	Status        string `json:"status"`
}

// VendorOrderUpdatePayload carries only the fields the caller wants
// changed. Lines and Status replace the stored lists wholesale.
type VendorOrderUpdatePayload struct {
	Brand            *string               `json:"brand"`
	SubBrand         *string               `json:"subBrand"`
	From             *string               `json:"from"`
	To               *string               `json:"to"`
	SchoolID         *string               `json:"school"`
	Description      *string               `json:"description"`
	PhotosVideosLink *string               `json:"photosVideosLink"`
	StockAdjusted    *bool                 `json:"stockAdjusted"`
	Lines            *[]OrderLinePayload   `json:"listOfToysSentLink"`
	Status           *[]StatusEventPayload `json:"status"`
}

type UpdateVendorOrderRequest struct {
	Order VendorOrderUpdatePayload `json:"order"`
}

func (req *UpdateVendorOrderRequest) Validate() error {
	p := req.Order
	if p.From != nil && !domain.PartyType(*p.From).IsValid() {
		return errInvalidParty
	}
	if p.To != nil && !domain.PartyType(*p.To).IsValid() {
		return errInvalidParty
	}
	if p.Status != nil {
		for _, event := range *p.Status {
			if !domain.OrderStatus(event.Status).IsValid() {
				return errInvalidStatus
			}
		}
	}
	if p.Lines != nil {
		for _, line := range *p.Lines {
			if line.ToyID == "" {
				return errors.New("every order line needs a toy")
			}
			if line.Quantity < 1 {
				return errors.New("every order line needs a quantity of at least 1")
			}
		}
	}

	return nil
}

// Apply overlays the provided fields onto the stored order and reports
// whether the lines or the status trail were replaced.
func (req *UpdateVendorOrderRequest) Apply(order *domain.VendorOrder) (replaceLines, replaceTrail bool) {
	p := req.Order
	if p.Brand != nil {
		order.Brand = *p.Brand
	}
	if p.SubBrand != nil {
		order.SubBrand = *p.SubBrand
	}
	if p.From != nil {
		order.From = domain.PartyType(*p.From)
	}
	if p.To != nil {
		order.To = domain.PartyType(*p.To)
	}
	if p.SchoolID != nil {
		order.SchoolID = p.SchoolID
	}
	if p.Description != nil {
		order.Description = *p.Description
	}
	if p.PhotosVideosLink != nil {
		order.PhotosVideosLink = *p.PhotosVideosLink
	}
	if p.StockAdjusted != nil {
		order.StockAdjusted = *p.StockAdjusted
	}
	if p.Lines != nil {
		order.Lines = nil
		for _, line := range *p.Lines {
			order.Lines = append(order.Lines, domain.OrderLine{
				ToyID:    line.ToyID,
				Quantity: line.Quantity,
				Price:    line.Price,
			})
		}
		replaceLines = true
	}
	if p.Status != nil {
		order.Status = nil
		for _, event := range *p.Status {
			order.Status = append(order.Status, domain.StatusEvent{
				Timestamp:     event.Timestamp,
				PersonName:    event.PersonName,
				ContactNumber: event.ContactNumber,
				Status:        domain.OrderStatus(event.Status),
			})
		}
		replaceTrail = true
	}

	return replaceLines, replaceTrail
}
