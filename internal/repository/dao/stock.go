package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
)

var ErrStockEntryNotFound = errors.New("stock entry not found")

// InsufficientStockError names the first line of a decrement batch
// whose requested quantity exceeds what is on hand.
type InsufficientStockError struct {
	ToyID     string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for toy %v: available %v, requested %v",
		e.ToyID, e.Available, e.Requested)
}

type StockEntry struct {
	ID string `gorm:"primaryKey;size:16"`

	ToyID    string `gorm:"size:16;uniqueIndex;not null"`
	Toy      Toy    `gorm:"foreignKey:ToyID"`
	Quantity int    `gorm:"not null;default:0;check:quantity >= 0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// StockChange is one toy/delta pair in a batch mutation.
type StockChange struct {
	ToyID    string
	Quantity int
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

func (d *StockDAO) FindByToyID(ctx context.Context, toyID string) (StockEntry, error) {
	var entry StockEntry
	result := d.db.WithContext(ctx).Where("toy_id = ?", toyID).Take(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StockEntry{}, ErrStockEntryNotFound
		}

		return StockEntry{}, result.Error
	}

	return entry, nil
}

func (d *StockDAO) FindAll(ctx context.Context) ([]StockEntry, error) {
	var entries []StockEntry
	result := d.db.WithContext(ctx).Preload("Toy").Order("created_at ASC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Assign sets the absolute quantity for a toy, creating the entry when
// absent. Returns the entry and whether it was created.
func (d *StockDAO) Assign(ctx context.Context, toyID string, quantity int) (StockEntry, bool, error) {
	entry, err := d.FindByToyID(ctx, toyID)
	if err == nil {
		result := d.db.WithContext(ctx).
			Model(&StockEntry{}).
			Where("id = ?", entry.ID).
			Update("quantity", quantity)
		if result.Error != nil {
			return StockEntry{}, false, result.Error
		}
		entry.Quantity = quantity

		return entry, false, nil
	}
	if !errors.Is(err, ErrStockEntryNotFound) {
		return StockEntry{}, false, err
	}

	entry = StockEntry{
		ID:       identifier.New(),
		ToyID:    toyID,
		Quantity: quantity,
	}
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return StockEntry{}, false, result.Error
	}

	return entry, true, nil
}

// IncrementMany adds each line's quantity to its toy's entry, creating
// entries as needed. Each upsert is atomic on its own row (ON CONFLICT
// with an in-database add), but the batch is not one transaction:
// receiving stock never overdraws, so per-key atomicity is enough.
func (d *StockDAO) IncrementMany(ctx context.Context, changes []StockChange) error {
	for _, change := range changes {
		entry := StockEntry{
			ID:       identifier.New(),
			ToyID:    change.ToyID,
			Quantity: change.Quantity,
		}
		result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "toy_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("stock_entries.quantity + ?", change.Quantity),
				"updated_at": time.Now(),
			}),
		}).Create(&entry)
		if result.Error != nil {
			return fmt.Errorf("upsert stock for toy %v -> %w", change.ToyID, result.Error)
		}
	}

	return nil
}

// DecrementMany subtracts each line's quantity inside one transaction.
// Rows are locked FOR UPDATE in line order, so concurrent decrements of
// the same toy serialize and can never both read the same available
// value. Any missing entry or shortfall aborts the whole batch with no
// quantity changed.
func (d *StockDAO) DecrementMany(ctx context.Context, changes []StockChange) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, change := range changes {
			var entry StockEntry
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("toy_id = ?", change.ToyID).
				Take(&entry).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &InsufficientStockError{
						ToyID:     change.ToyID,
						Available: 0,
						Requested: change.Quantity,
					}
				}

				return err
			}

			if entry.Quantity < change.Quantity {
				return &InsufficientStockError{
					ToyID:     change.ToyID,
					Available: entry.Quantity,
					Requested: change.Quantity,
				}
			}

			err = tx.Model(&StockEntry{}).
				Where("id = ?", entry.ID).
				Update("quantity", entry.Quantity-change.Quantity).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (d *StockDAO) DeleteByToyID(ctx context.Context, toyID string) error {
	result := d.db.WithContext(ctx).Delete(&StockEntry{}, "toy_id = ?", toyID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStockEntryNotFound
	}

	return nil
}
