package domain

import "time"

type ToyLevel string

const (
	LevelPrimary         ToyLevel = "PRIMARY"
	LevelSecondary       ToyLevel = "SECONDARY"
	LevelSeniorSecondary ToyLevel = "SENIOR_SECONDARY"
	LevelMix             ToyLevel = "MIX"
	LevelAll             ToyLevel = "ALL"
)

func (l ToyLevel) IsValid() bool {
	switch l {
	case LevelPrimary, LevelSecondary, LevelSeniorSecondary, LevelMix, LevelAll:
		return true
	}
	return false
}

// Toy is a catalog entry. Identity is immutable; attributes change only
// through an explicit update. Stock is tracked separately.
type Toy struct {
	ID            string   `json:"id"`
	Brand         string   `json:"brand"`
	SubBrand      string   `json:"subBrand"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	Category      string   `json:"category"`
	CodeName      string   `json:"codeName"`
	CataloguePgNo int      `json:"cataloguePgNo"`
	Level         ToyLevel `json:"level"`
	Learn         []string `json:"learn"`
	Link          string   `json:"link"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
