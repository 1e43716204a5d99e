package repository

import (
	"context"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/repository/dao"
)

var ErrStockEntryNotFound = dao.ErrStockEntryNotFound

// InsufficientStockError is re-exported so callers above the dao can
// inspect the offending line without importing the dao package.
type InsufficientStockError = dao.InsufficientStockError

type StockDAO interface {
	FindByToyID(ctx context.Context, toyID string) (dao.StockEntry, error)
	FindAll(ctx context.Context) ([]dao.StockEntry, error)
	Assign(ctx context.Context, toyID string, quantity int) (dao.StockEntry, bool, error)
	IncrementMany(ctx context.Context, changes []dao.StockChange) error
	DecrementMany(ctx context.Context, changes []dao.StockChange) error
	DeleteByToyID(ctx context.Context, toyID string) error
}

type StockRepository struct {
	dao StockDAO
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

func (r *StockRepository) FindByToyID(ctx context.Context, toyID string) (domain.StockEntry, error) {
	found, err := r.dao.FindByToyID(ctx, toyID)
	if err != nil {
		return domain.StockEntry{}, fmt.Errorf("r.dao.FindByToyID -> %w", err)
	}

	return stockDAOToDomain(found), nil
}

func (r *StockRepository) FindAll(ctx context.Context) ([]domain.StockEntry, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	entries := make([]domain.StockEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, stockDAOToDomain(e))
	}

	return entries, nil
}

func (r *StockRepository) Assign(ctx context.Context, toyID string, quantity int) (domain.StockEntry, bool, error) {
	entry, created, err := r.dao.Assign(ctx, toyID, quantity)
	if err != nil {
		return domain.StockEntry{}, false, fmt.Errorf("r.dao.Assign -> %w", err)
	}

	return stockDAOToDomain(entry), created, nil
}

func (r *StockRepository) IncrementMany(ctx context.Context, lines []domain.StockLine) error {
	if err := r.dao.IncrementMany(ctx, linesToChanges(lines)); err != nil {
		return fmt.Errorf("r.dao.IncrementMany -> %w", err)
	}

	return nil
}

func (r *StockRepository) DecrementMany(ctx context.Context, lines []domain.StockLine) error {
	// Not wrapped: the typed InsufficientStockError is the contract here.
	return r.dao.DecrementMany(ctx, linesToChanges(lines))
}

func (r *StockRepository) DeleteByToyID(ctx context.Context, toyID string) error {
	if err := r.dao.DeleteByToyID(ctx, toyID); err != nil {
		return fmt.Errorf("r.dao.DeleteByToyID -> %w", err)
	}

	return nil
}

func linesToChanges(lines []domain.StockLine) []dao.StockChange {
	changes := make([]dao.StockChange, 0, len(lines))
	for _, line := range lines {
		changes = append(changes, dao.StockChange{
			ToyID:    line.ToyID,
			Quantity: line.Quantity,
		})
	}

	return changes
}

func stockDAOToDomain(e dao.StockEntry) domain.StockEntry {
	entry := domain.StockEntry{
		ID:        e.ID,
		ToyID:     e.ToyID,
		Quantity:  e.Quantity,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Toy.ID != "" {
		toy := toyDAOToDomain(e.Toy)
		entry.Toy = &toy
	}

	return entry
}
