package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/toybridge/toybridge-api/internal/domain"
)

var errInvalidToyLevel = errors.New("level must be one of PRIMARY, SECONDARY, SENIOR_SECONDARY, MIX, ALL")

type ToyPayload struct {
	Brand         string   `json:"brand"`
	SubBrand      string   `json:"subBrand"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	Category      string   `json:"category"`
	CodeName      string   `json:"codeName"`
	CataloguePgNo int      `json:"cataloguePgNo"`
	Level         string   `json:"level"`
	Learn         []string `json:"learn"`
	Link          string   `json:"link"`
}

type CreateToyRequest struct {
	Toy ToyPayload `json:"toy"`
}

func (req *CreateToyRequest) Validate() error {
	err := validation.ValidateStruct(
		&req.Toy,
		validation.Field(&req.Toy.Name, validation.Required),
		validation.Field(&req.Toy.Price, validation.Min(0)),
		validation.Field(&req.Toy.CataloguePgNo, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if req.Toy.Level != "" && !domain.ToyLevel(req.Toy.Level).IsValid() {
		return errInvalidToyLevel
	}

	return nil
}

func (req *CreateToyRequest) ToDomain() domain.Toy {
	return domain.Toy{
		Brand:         req.Toy.Brand,
		SubBrand:      req.Toy.SubBrand,
		Name:          req.Toy.Name,
		Price:         req.Toy.Price,
		Category:      req.Toy.Category,
		CodeName:      req.Toy.CodeName,
		CataloguePgNo: req.Toy.CataloguePgNo,
		Level:         domain.ToyLevel(req.Toy.Level),
		Learn:         req.Toy.Learn,
		Link:          req.Toy.Link,
	}
}

// ToyUpdatePayload carries the toy's id plus only the fields the
// caller wants changed.
type ToyUpdatePayload struct {
	ID            string    `json:"id"`
	Brand         *string   `json:"brand"`
	SubBrand      *string   `json:"subBrand"`
	Name          *string   `json:"name"`
	Price         *int      `json:"price"`
	Category      *string   `json:"category"`
	CodeName      *string   `json:"codeName"`
	CataloguePgNo *int      `json:"cataloguePgNo"`
	Level         *string   `json:"level"`
	Learn         *[]string `json:"learn"`
	Link          *string   `json:"link"`
}

type UpdateToyRequest struct {
	Toy ToyUpdatePayload `json:"toy"`
}

func (req *UpdateToyRequest) Validate() error {
	if err := validation.Validate(req.Toy.ID, validation.Required); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	if req.Toy.Level != nil && !domain.ToyLevel(*req.Toy.Level).IsValid() {
		return errInvalidToyLevel
	}
	if req.Toy.Price != nil && *req.Toy.Price < 0 {
		return errors.New("price cannot be negative")
	}

	return nil
}

// Apply overlays the provided fields onto the stored toy.
func (req *UpdateToyRequest) Apply(toy *domain.Toy) {
	p := req.Toy
	if p.Brand != nil {
		toy.Brand = *p.Brand
	}
	if p.SubBrand != nil {
		toy.SubBrand = *p.SubBrand
	}
	if p.Name != nil {
		toy.Name = *p.Name
	}
	if p.Price != nil {
		toy.Price = *p.Price
	}
	if p.Category != nil {
		toy.Category = *p.Category
	}
	if p.CodeName != nil {
		toy.CodeName = *p.CodeName
	}
	if p.CataloguePgNo != nil {
		toy.CataloguePgNo = *p.CataloguePgNo
	}
	if p.Level != nil {
		toy.Level = domain.ToyLevel(*p.Level)
	}
	if p.Learn != nil {
		toy.Learn = *p.Learn
	}
	if p.Link != nil {
		toy.Link = *p.Link
	}
}
