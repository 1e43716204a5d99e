package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/repository"
)

var (
	ErrStockEntryNotFound = repository.ErrStockEntryNotFound
	ErrOrderNotFound      = repository.ErrOrderNotFound
	ErrInvalidQuantity    = errors.New("quantity must be a valid non-negative integer")
)

// InsufficientStockError reports the first cart line a batch removal
// could not satisfy.
type InsufficientStockError = repository.InsufficientStockError

type StockRepository interface {
	FindByToyID(ctx context.Context, toyID string) (domain.StockEntry, error)
	FindAll(ctx context.Context) ([]domain.StockEntry, error)
	Assign(ctx context.Context, toyID string, quantity int) (domain.StockEntry, bool, error)
	IncrementMany(ctx context.Context, lines []domain.StockLine) error
	DecrementMany(ctx context.Context, lines []domain.StockLine) error
	DeleteByToyID(ctx context.Context, toyID string) error
}

// ToyCatalog answers whether every referenced toy exists. Exists
// returns the first missing id, or "" when all are present.
type ToyCatalog interface {
	Exists(ctx context.Context, ids []string) (string, error)
}

// OrderMarker flips the stock-adjusted flag on vendor orders once
// their quantities have been applied to the ledger.
type OrderMarker interface {
	Exists(ctx context.Context, id string) (bool, error)
	SetStockAdjusted(ctx context.Context, ids []string, adjusted bool) error
}

type StockService struct {
	repo   StockRepository
	toys   ToyCatalog
	orders OrderMarker
}

func NewStockService(repo StockRepository, toys ToyCatalog, orders OrderMarker) *StockService {
	return &StockService{
		repo:   repo,
		toys:   toys,
		orders: orders,
	}
}

// GetAvailable returns the on-hand quantity for a toy. A toy without a
// stock entry has zero on hand; that is not an error.
func (s *StockService) GetAvailable(ctx context.Context, toyID string) (int, error) {
	if err := identifier.Validate(toyID, "toy"); err != nil {
		return 0, err
	}

	entry, err := s.repo.FindByToyID(ctx, toyID)
	if errors.Is(err, ErrStockEntryNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindByToyID -> %w", err)
	}

	return entry.Quantity, nil
}

func (s *StockService) GetEntries(ctx context.Context) ([]domain.StockEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return entries, nil
}

// Assign sets a toy's on-hand quantity outright, creating the entry if
// the toy has never been stocked. Returns the entry and whether it was
// newly created.
func (s *StockService) Assign(ctx context.Context, toyID string, quantity int) (domain.StockEntry, bool, error) {
	if err := identifier.Validate(toyID, "toy"); err != nil {
		return domain.StockEntry{}, false, err
	}
	if quantity < 0 {
		return domain.StockEntry{}, false, ErrInvalidQuantity
	}

	if err := s.toysExist(ctx, []string{toyID}); err != nil {
		return domain.StockEntry{}, false, err
	}

	entry, created, err := s.repo.Assign(ctx, toyID, quantity)
	if err != nil {
		return domain.StockEntry{}, false, fmt.Errorf("s.repo.Assign -> %w", err)
	}

	return entry, created, nil
}

// AddMany restocks inventory from a received vendor order and marks
// the order stock-adjusted. Each line is added independently; a
// mid-batch failure leaves earlier lines applied.
func (s *StockService) AddMany(ctx context.Context, orderID string, lines []domain.StockLine) error {
	if err := identifier.Validate(orderID, "order"); err != nil {
		return err
	}
	if err := validateLines(lines, 1); err != nil {
		return err
	}

	if err := s.toysExist(ctx, toyIDs(lines)); err != nil {
		return err
	}

	exists, err := s.orders.Exists(ctx, orderID)
	if err != nil {
		return fmt.Errorf("s.orders.Exists -> %w", err)
	}
	if !exists {
		return ErrOrderNotFound
	}

	if err = s.repo.IncrementMany(ctx, lines); err != nil {
		return fmt.Errorf("s.repo.IncrementMany -> %w", err)
	}

	if err = s.orders.SetStockAdjusted(ctx, []string{orderID}, true); err != nil {
		return fmt.Errorf("s.orders.SetStockAdjusted -> %w", err)
	}

	return nil
}

// RemoveMany debits the batch atomically: either every line is
// satisfied or nothing changes and an *InsufficientStockError names
// the first line that fell short.
func (s *StockService) RemoveMany(ctx context.Context, lines []domain.StockLine) error {
	if err := validateLines(lines, 0); err != nil {
		return err
	}

	if err := s.toysExist(ctx, toyIDs(lines)); err != nil {
		return err
	}

	if err := s.repo.DecrementMany(ctx, lines); err != nil {
		var insufficient *InsufficientStockError
		if errors.As(err, &insufficient) {
			return err
		}
		return fmt.Errorf("s.repo.DecrementMany -> %w", err)
	}

	return nil
}

// CheckAvailability reports the cart lines current stock cannot cover
// without mutating anything. An empty result means the whole cart is
// satisfiable: it accepts exactly the lines RemoveMany would, including
// zero-quantity ones.
func (s *StockService) CheckAvailability(ctx context.Context, lines []domain.StockLine) ([]domain.Shortfall, error) {
	if err := validateLines(lines, 0); err != nil {
		return nil, err
	}

	var shortfalls []domain.Shortfall
	for _, line := range lines {
		entry, err := s.repo.FindByToyID(ctx, line.ToyID)
		if errors.Is(err, ErrStockEntryNotFound) {
			shortfalls = append(shortfalls, domain.Shortfall{
				ToyID:     line.ToyID,
				Message:   "Toy not found in stock",
				Available: 0,
				Requested: line.Quantity,
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindByToyID -> %w", err)
		}

		if entry.Quantity < line.Quantity {
			shortfalls = append(shortfalls, domain.Shortfall{
				ToyID:     line.ToyID,
				Message:   "Insufficient stock",
				Available: entry.Quantity,
				Requested: line.Quantity,
			})
		}
	}

	return shortfalls, nil
}

func (s *StockService) DeleteEntry(ctx context.Context, toyID string) error {
	if err := identifier.Validate(toyID, "toy"); err != nil {
		return err
	}

	if err := s.repo.DeleteByToyID(ctx, toyID); err != nil {
		if errors.Is(err, ErrStockEntryNotFound) {
			return err
		}
		return fmt.Errorf("s.repo.DeleteByToyID -> %w", err)
	}

	return nil
}

func (s *StockService) toysExist(ctx context.Context, ids []string) error {
	missing, err := s.toys.Exists(ctx, ids)
	if err != nil {
		return fmt.Errorf("s.toys.Exists -> %w", err)
	}
	if missing != "" {
		return fmt.Errorf("toy %v: %w", missing, ErrToyNotFound)
	}

	return nil
}

func validateLines(lines []domain.StockLine, minQuantity int) error {
	if len(lines) == 0 {
		return errors.New("at least one toy line is required")
	}
	for _, line := range lines {
		if err := identifier.Validate(line.ToyID, "toy"); err != nil {
			return err
		}
		if line.Quantity < minQuantity {
			return ErrInvalidQuantity
		}
	}

	return nil
}

func toyIDs(lines []domain.StockLine) []string {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ToyID)
	}

	return ids
}
