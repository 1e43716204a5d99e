package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
)

var ErrOrderNotFound = errors.New("order not found")

type VendorOrder struct {
	ID string `gorm:"primaryKey;size:16"`

	Brand            string
	SubBrand         string
	FromParty        string  `gorm:"column:from_party;size:16;not null"`
	ToParty          string  `gorm:"column:to_party;size:16;not null"`
	SchoolID         *string `gorm:"size:16;index"`
	Description      string
	PhotosVideosLink string
	StockAdjusted    bool `gorm:"not null;default:false"`

	Lines []VendorOrderLine   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Trail []VendorOrderStatus `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VendorOrderLine struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  string `gorm:"size:16;index;not null"`
	Position int    `gorm:"not null"`
	ToyID    string `gorm:"size:16;not null"`
	Toy      Toy    `gorm:"foreignKey:ToyID"`
	Quantity int    `gorm:"not null"`
	Price    int    `gorm:"not null"`
}

type VendorOrderStatus struct {
	ID            uint   `gorm:"primaryKey"`
	OrderID       string `gorm:"size:16;index;not null"`
	Position      int    `gorm:"not null"`
	Timestamp     string
	PersonName    string
	ContactNumber string
	Status        string `gorm:"size:32;not null"`
}

type VendorOrderDAO struct {
	db *gorm.DB
}

func NewVendorOrderDAO(db *gorm.DB) *VendorOrderDAO {
	return &VendorOrderDAO{
		db: db,
	}
}

func withChildren(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("vendor_order_lines.position ASC")
		}).
		Preload("Lines.Toy").
		Preload("Trail", func(db *gorm.DB) *gorm.DB {
			return db.Order("vendor_order_statuses.position ASC")
		})
}

// InsertBatch persists all orders with their lines and trails in one
// transaction. Any failure rolls back the whole batch, so a reported
// error always means zero orders were created.
func (d *VendorOrderDAO) InsertBatch(ctx context.Context, orders []VendorOrder) ([]VendorOrder, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range orders {
			if orders[i].ID == "" {
				orders[i].ID = identifier.New()
			}

			if err := tx.Omit(clause.Associations).Create(&orders[i]).Error; err != nil {
				return err
			}

			for j := range orders[i].Lines {
				orders[i].Lines[j].ID = 0
				orders[i].Lines[j].OrderID = orders[i].ID
				orders[i].Lines[j].Position = j
			}
			if len(orders[i].Lines) > 0 {
				if err := tx.Omit("Toy").Create(&orders[i].Lines).Error; err != nil {
					return err
				}
			}

			for j := range orders[i].Trail {
				orders[i].Trail[j].ID = 0
				orders[i].Trail[j].OrderID = orders[i].ID
				orders[i].Trail[j].Position = j
			}
			if len(orders[i].Trail) > 0 {
				if err := tx.Create(&orders[i].Trail).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (d *VendorOrderDAO) FindByID(ctx context.Context, id string) (VendorOrder, error) {
	var order VendorOrder
	result := withChildren(d.db.WithContext(ctx)).Where("id = ?", id).Take(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return VendorOrder{}, ErrOrderNotFound
		}

		return VendorOrder{}, result.Error
	}

	return order, nil
}

func (d *VendorOrderDAO) FindAll(ctx context.Context) ([]VendorOrder, error) {
	var orders []VendorOrder
	result := withChildren(d.db.WithContext(ctx)).Order("created_at ASC").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

func (d *VendorOrderDAO) FindBySchoolID(ctx context.Context, schoolID string) ([]VendorOrder, error) {
	var orders []VendorOrder
	result := withChildren(d.db.WithContext(ctx)).
		Where("school_id = ?", schoolID).
		Order("created_at ASC").
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

func (d *VendorOrderDAO) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	result := d.db.WithContext(ctx).Model(&VendorOrder{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// VendorOrderUpdate carries an update of scalar fields plus optional
// full replacement of the line list and the status trail. The trail is
// never mutated in place: callers replace it wholesale.
type VendorOrderUpdate struct {
	Order        VendorOrder
	ReplaceLines bool
	ReplaceTrail bool
}

func (d *VendorOrderDAO) Update(ctx context.Context, up VendorOrderUpdate) (VendorOrder, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&VendorOrder{}).
			Where("id = ?", up.Order.ID).
			Select("brand", "sub_brand", "from_party", "to_party", "school_id",
				"description", "photos_videos_link", "stock_adjusted").
			Updates(&up.Order)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOrderNotFound
		}

		if up.ReplaceLines {
			if err := tx.Delete(&VendorOrderLine{}, "order_id = ?", up.Order.ID).Error; err != nil {
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

		if up.ReplaceTrail {
			if err := tx.Delete(&VendorOrderStatus{}, "order_id = ?", up.Order.ID).Error; err != nil {
				return err
			}
			for j := range up.Order.Trail {
				up.Order.Trail[j].ID = 0
				up.Order.Trail[j].OrderID = up.Order.ID
				up.Order.Trail[j].Position = j
			}
			if len(up.Order.Trail) > 0 {
				if err := tx.Create(&up.Order.Trail).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return VendorOrder{}, err
	}

	return d.FindByID(ctx, up.Order.ID)
}

func (d *VendorOrderDAO) SetStockAdjusted(ctx context.Context, ids []string, adjusted bool) error {
	result := d.db.WithContext(ctx).
		Model(&VendorOrder{}).
		Where("id IN ?", ids).
		Update("stock_adjusted", adjusted)

	return result.Error
}

func (d *VendorOrderDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Select(clause.Associations).Delete(&VendorOrder{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
