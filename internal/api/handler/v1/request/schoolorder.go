package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/toybridge/toybridge-api/internal/domain"
)

type SchoolOrderLinePayload struct {
	ToyID    string `json:"toy"`
	Quantity int    `json:"quantity"`
}

type SchoolOrderPayload struct {
	SchoolID         string                   `json:"school"`
	Lines            []SchoolOrderLinePayload `json:"listOfToysSentLink"`
	DateOfDispatch   string                   `json:"dateOfDispatch"`
	ModeOfDispatch   string                   `json:"modeOfDispatch"`
	TrackingDetails  string                   `json:"trackingDetails"`
	DateOfDelivery   string                   `json:"dateOfDelivery"`
	PhotosVideosLink string                   `json:"photosVideosLink"`
}

type PlaceSchoolOrderRequest struct {
	Order SchoolOrderPayload `json:"order"`
}

func (req *PlaceSchoolOrderRequest) Validate() error {
	err := validation.ValidateStruct(
		&req.Order,
		validation.Field(&req.Order.SchoolID, validation.Required),
		validation.Field(&req.Order.Lines, validation.Required),
	)
	if err != nil {
		return err
	}

	for _, line := range req.Order.Lines {
		if line.ToyID == "" {
			return errors.New("every order line needs a toy")
		}
		if line.Quantity < 1 {
			return errors.New("every order line needs a quantity of at least 1")
		}
	}

	return nil
}

func (req *PlaceSchoolOrderRequest) ToDomain() domain.SchoolOrder {
	order := domain.SchoolOrder{
		SchoolID:         req.Order.SchoolID,
		DateOfDispatch:   req.Order.DateOfDispatch,
		ModeOfDispatch:   req.Order.ModeOfDispatch,
		TrackingDetails:  req.Order.TrackingDetails,
		DateOfDelivery:   req.Order.DateOfDelivery,
		PhotosVideosLink: req.Order.PhotosVideosLink,
	}
	for _, line := range req.Order.Lines {
		order.Lines = append(order.Lines, domain.SchoolOrderLine{
			ToyID:    line.ToyID,
			Quantity: line.Quantity,
		})
	}

	return order
}

type SchoolOrderUpdatePayload struct {
	SchoolID         *string                   `json:"school"`
	Lines            *[]SchoolOrderLinePayload `json:"listOfToysSentLink"`
	DateOfDispatch   *string                   `json:"dateOfDispatch"`
	ModeOfDispatch   *string                   `json:"modeOfDispatch"`
	TrackingDetails  *string                   `json:"trackingDetails"`
	DateOfDelivery   *string                   `json:"dateOfDelivery"`
	PhotosVideosLink *string                   `json:"photosVideosLink"`
}

type UpdateSchoolOrderRequest struct {
	Order SchoolOrderUpdatePayload `json:"order"`
}

func (req *UpdateSchoolOrderRequest) Validate() error {
	if req.Order.Lines != nil {
		for _, line := range *req.Order.Lines {
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

func (req *UpdateSchoolOrderRequest) Apply(order *domain.SchoolOrder) (replaceLines bool) {
	p := req.Order
	if p.SchoolID != nil {
		order.SchoolID = *p.SchoolID
	}
	if p.DateOfDispatch != nil {
		order.DateOfDispatch = *p.DateOfDispatch
	}
	if p.ModeOfDispatch != nil {
		order.ModeOfDispatch = *p.ModeOfDispatch
	}
	if p.TrackingDetails != nil {
		order.TrackingDetails = *p.TrackingDetails
	}
	if p.DateOfDelivery != nil {
		order.DateOfDelivery = *p.DateOfDelivery
	}
	if p.PhotosVideosLink != nil {
		order.PhotosVideosLink = *p.PhotosVideosLink
	}
	if p.Lines != nil {
		order.Lines = nil
		for _, line := range *p.Lines {
			order.Lines = append(order.Lines, domain.SchoolOrderLine{
				ToyID:    line.ToyID,
				Quantity: line.Quantity,
			})
		}
		replaceLines = true
	}

	return replaceLines
}
