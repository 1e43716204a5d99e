// Package response holds the view shapes the API renders. Timestamps
// are doubled up in IST because the field team reads them off the raw
// JSON.
package response

import (
	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/timefmt"
)

type Toy struct {
	domain.Toy
	CreatedAtIST string `json:"createdAtIST"`
	UpdatedAtIST string `json:"updatedAtIST"`
}

func NewToy(toy domain.Toy) Toy {
	return Toy{
		Toy:          toy,
		CreatedAtIST: timefmt.IST(toy.CreatedAt),
		UpdatedAtIST: timefmt.IST(toy.UpdatedAt),
	}
}

func NewToys(toys []domain.Toy) []Toy {
	views := make([]Toy, 0, len(toys))
	for _, toy := range toys {
		views = append(views, NewToy(toy))
	}

	return views
}
