package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
)

var ErrSchoolOrderNotFound = errors.New("school order not found")

type SchoolOrder struct {
	ID string `gorm:"primaryKey;size:16"`

	SchoolID         string `gorm:"size:16;index;not null"`
	DateOfDispatch   string
	ModeOfDispatch   string
	TrackingDetails  string
	DateOfDelivery   string
	PhotosVideosLink string

	Lines []SchoolOrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SchoolOrderLine struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  string `gorm:"size:16;index;not null"`
	Position int    `gorm:"not null"`
	ToyID    string `gorm:"size:16;not null"`
	Toy      Toy    `gorm:"foreignKey:ToyID"`
	Quantity int    `gorm:"not null"`
}

type SchoolOrderDAO struct {
	db *gorm.DB
}

func NewSchoolOrderDAO(db *gorm.DB) *SchoolOrderDAO {
	return &SchoolOrderDAO{
		db: db,
	}
}

func schoolOrderChildren(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("school_order_lines.position ASC")
		}).
		Preload("Lines.Toy")
}

func (d *SchoolOrderDAO) Insert(ctx context.Context, order SchoolOrder) (SchoolOrder, error) {
	if order.ID == "" {
		order.ID = identifier.New()
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		for j := range order.Lines {
			order.Lines[j].ID = 0
			order.Lines[j].OrderID = order.ID
			order.Lines[j].Position = j
		}
		if len(order.Lines) > 0 {
			if err := tx.Omit("Toy").Create(&order.Lines).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return SchoolOrder{}, err
	}

	return d.FindByID(ctx, order.ID)
}

func (d *SchoolOrderDAO) FindByID(ctx context.Context, id string) (SchoolOrder, error) {
	var order SchoolOrder
	result := schoolOrderChildren(d.db.WithContext(ctx)).Where("id = ?", id).Take(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SchoolOrder{}, ErrSchoolOrderNotFound
		}

		return SchoolOrder{}, result.Error
	}

	return order, nil
}

func (d *SchoolOrderDAO) FindBySchoolID(ctx context.Context, schoolID string) ([]SchoolOrder, error) {
	var orders []SchoolOrder
	result := schoolOrderChildren(d.db.WithContext(ctx)).
		Where("school_id = ?", schoolID).
		Order("created_at ASC").
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

type SchoolOrderUpdate struct {
	Order        SchoolOrder
	ReplaceLines bool
}

func (d *SchoolOrderDAO) Update(ctx context.Context, up SchoolOrderUpdate) (SchoolOrder, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&SchoolOrder{}).
			Where("id = ?", up.Order.ID).
			Select("school_id", "date_of_dispatch", "mode_of_dispatch",
				"tracking_details", "date_of_delivery", "photos_videos_link").
			Updates(&up.Order)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSchoolOrderNotFound
		}

		if up.ReplaceLines {
			if err := tx.Delete(&SchoolOrderLine{}, "order_id = ?", up.Order.ID).Error; err != nil {
				return err
			}
			for j := range up.Order.Lines {
				up.Order.Lines[j].ID = 0
				up.Order.Lines[j].OrderID = up.Order.ID
				up.Order.Lines[j].Position = j
			}
			if len(up.Order.Lines) > 0 {
				if err := tx.Omit("Toy").Create(&up.Order.Lines).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return SchoolOrder{}, err
	}

	return d.FindByID(ctx, up.Order.ID)
}

func (d *SchoolOrderDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Select(clause.Associations).Delete(&SchoolOrder{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSchoolOrderNotFound
	}

	return nil
}
