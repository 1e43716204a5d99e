package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/toybridge/toybridge-api/internal/domain"
)

// StockLinePayload is one toy/quantity pair in a stock batch or a cart,
// keyed the same way as the place-order cart.
type StockLinePayload struct {
	ToyID    string `json:"toyId"`
	Quantity int    `json:"quantity"`
}

type AssignStockRequest struct {
	ToyID    string `json:"toyId"`
	Quantity int    `json:"quantity"`
}

func (req *AssignStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ToyID, validation.Required),
		validation.Field(&req.Quantity, validation.Min(0)),
	)
}

// AddStockRequest restocks inventory from a received vendor order.
type AddStockRequest struct {
	OrderID string             `json:"orderId"`
	Toys    []StockLinePayload `json:"toys"`
}

func (req *AddStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Toys, validation.Required),
	)
}

func (req *AddStockRequest) Lines() []domain.StockLine {
	return toStockLines(req.Toys)
}

type RemoveStockRequest struct {
	Toys []StockLinePayload `json:"toys"`
}

func (req *RemoveStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Toys, validation.Required),
	)
}

func (req *RemoveStockRequest) Lines() []domain.StockLine {
	return toStockLines(req.Toys)
}

type CheckAvailabilityRequest struct {
	Cart []StockLinePayload `json:"cart"`
}

func (req *CheckAvailabilityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Cart, validation.Required),
	)
}

func (req *CheckAvailabilityRequest) Lines() []domain.StockLine {
	return toStockLines(req.Cart)
}

func toStockLines(payload []StockLinePayload) []domain.StockLine {
	lines := make([]domain.StockLine, 0, len(payload))
	for _, p := range payload {
		lines = append(lines, domain.StockLine{
			ToyID:    p.ToyID,
			Quantity: p.Quantity,
		})
	}

	return lines
}
