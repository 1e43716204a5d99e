package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AddOtherProductRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

func (req *AddOtherProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Item, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}
