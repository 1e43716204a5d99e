package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
)

var ErrOtherProductNotFound = errors.New("other product not found")

type OtherProduct struct {
	ID string `gorm:"primaryKey;size:16"`

	OrderID  string `gorm:"size:16;index;not null"`
	Item     string
	Quantity int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type OtherProductDAO struct {
	db *gorm.DB
}

func NewOtherProductDAO(db *gorm.DB) *OtherProductDAO {
	return &OtherProductDAO{
		db: db,
	}
}

func (d *OtherProductDAO) Insert(ctx context.Context, product OtherProduct) (OtherProduct, error) {
	if product.ID == "" {
		product.ID = identifier.New()
	}

	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return OtherProduct{}, result.Error
	}

	return product, nil
}

func (d *OtherProductDAO) FindByOrderID(ctx context.Context, orderID string) ([]OtherProduct, error) {
	var products []OtherProduct
	result := d.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *OtherProductDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&OtherProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOtherProductNotFound
	}

	return nil
}
