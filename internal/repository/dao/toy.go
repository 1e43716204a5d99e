package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
)

var ErrToyNotFound = errors.New("toy not found")

type Toy struct {
	ID string `gorm:"primaryKey;size:16"`

	Brand         string
	SubBrand      string
	Name          string
	Price         int `gorm:"not null;default:0"`
	Category      string
	CodeName      string
	CataloguePgNo int      `gorm:"not null;default:0"`
	Level         string   `gorm:"size:32"`
	Learn         []string `gorm:"serializer:json"`
	Link          string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ToyDAO struct {
	db *gorm.DB
}

func NewToyDAO(db *gorm.DB) *ToyDAO {
	return &ToyDAO{
		db: db,
	}
}

func (d *ToyDAO) Insert(ctx context.Context, toy Toy) (Toy, error) {
	if toy.ID == "" {
		toy.ID = identifier.New()
	}

	result := d.db.WithContext(ctx).Create(&toy)
	if result.Error != nil {
		return Toy{}, result.Error
	}

	return toy, nil
}

func (d *ToyDAO) FindByID(ctx context.Context, id string) (Toy, error) {
	var toy Toy
	result := d.db.WithContext(ctx).Where("id = ?", id).Take(&toy)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Toy{}, ErrToyNotFound
		}

		return Toy{}, result.Error
	}

	return toy, nil
}

func (d *ToyDAO) FindAll(ctx context.Context) ([]Toy, error) {
	var toys []Toy
	result := d.db.WithContext(ctx).Order("created_at ASC").Find(&toys)
	if result.Error != nil {
		return nil, result.Error
	}

	return toys, nil
}

// Exists reports whether every id in ids names a catalog toy.
// The first missing id is returned with ErrToyNotFound.
func (d *ToyDAO) Exists(ctx context.Context, ids []string) (string, error) {
	for _, id := range ids {
		var count int64
		result := d.db.WithContext(ctx).Model(&Toy{}).Where("id = ?", id).Count(&count)
		if result.Error != nil {
			return "", result.Error
		}
		if count == 0 {
			return id, ErrToyNotFound
		}
	}

	return "", nil
}

func (d *ToyDAO) Update(ctx context.Context, toy Toy) (Toy, error) {
	result := d.db.WithContext(ctx).
		Model(&Toy{}).
		Where("id = ?", toy.ID).
		Select("brand", "sub_brand", "name", "price", "category", "code_name",
			"catalogue_pg_no", "level", "learn", "link").
		Updates(&toy)
	if result.Error != nil {
		return Toy{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Toy{}, ErrToyNotFound
	}

	return d.FindByID(ctx, toy.ID)
}

func (d *ToyDAO) Delete(ctx context.Context, id string) (Toy, error) {
	toy, err := d.FindByID(ctx, id)
	if err != nil {
		return Toy{}, err
	}

	result := d.db.WithContext(ctx).Delete(&Toy{}, "id = ?", id)
	if result.Error != nil {
		return Toy{}, result.Error
	}

	return toy, nil
}
