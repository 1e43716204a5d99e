package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/pkg/timefmt"
	"github.com/toybridge/toybridge-api/internal/sheet"
)

var (
	ErrSameParty          = errors.New("from and to cannot be the same party")
	ErrInvalidParty       = errors.New("from and to must be one of vendor, ngo, school")
	ErrEmptyCart          = errors.New("cart must have at least one item")
	ErrInvalidPrice       = errors.New("price must be a valid non-negative integer")
	ErrSchoolIDRequired   = errors.New("a school id is required when ordering to a school")
	ErrSchoolIDNotAllowed = errors.New("a school id is only valid when ordering to a school")
)

// StockAdjustmentError means the orders were created but debiting the
// stock ledger failed afterwards. The orders are NOT rolled back; the
// caller gets their ids so the ledger can be reconciled by hand.
type StockAdjustmentError struct {
	OrderIDs []string
	Err      error
}

func (e *StockAdjustmentError) Error() string {
	return fmt.Sprintf("orders %v created but stock adjustment failed: %v", e.OrderIDs, e.Err)
}

func (e *StockAdjustmentError) Unwrap() error {
	return e.Err
}

type VendorOrderRepository interface {
	CreateBatch(ctx context.Context, orders []domain.VendorOrder) ([]domain.VendorOrder, error)
	FindByID(ctx context.Context, id string) (domain.VendorOrder, error)
	FindAll(ctx context.Context) ([]domain.VendorOrder, error)
	FindBySchoolID(ctx context.Context, schoolID string) ([]domain.VendorOrder, error)
	Update(ctx context.Context, order domain.VendorOrder, replaceLines, replaceTrail bool) (domain.VendorOrder, error)
	SetStockAdjusted(ctx context.Context, ids []string, adjusted bool) error
	Delete(ctx context.Context, id string) error
}

// ToyFinder resolves toys for validation and for ledger rows.
type ToyFinder interface {
	FindByID(ctx context.Context, id string) (domain.Toy, error)
}

// SchoolFinder resolves the counterparty school of a dispatch.
type SchoolFinder interface {
	FindByID(ctx context.Context, id string) (domain.School, error)
}

// StockDebiter removes quantities from the stock ledger atomically.
type StockDebiter interface {
	RemoveMany(ctx context.Context, lines []domain.StockLine) error
}

// LedgerAppender records placed-order lines on the ledger workbook.
// Appending is best effort: the workbook is a working document for the
// field team, not the system of record.
type LedgerAppender interface {
	Append(from, to domain.PartyType, rows []sheet.LedgerRow) error
}

type VendorOrderService struct {
	repo    VendorOrderRepository
	toys    ToyFinder
	schools SchoolFinder
	stock   StockDebiter
	ledger  LedgerAppender
}

func NewVendorOrderService(
	repo VendorOrderRepository,
	toys ToyFinder,
	schools SchoolFinder,
	stock StockDebiter,
	ledger LedgerAppender,
) *VendorOrderService {
	return &VendorOrderService{
		repo:    repo,
		toys:    toys,
		schools: schools,
		stock:   stock,
		ledger:  ledger,
	}
}

// PlacementResult is what a successful (or partially successful)
// placement yields: the ids of every order draft created.
type PlacementResult struct {
	OrderIDs []string
}

// PlaceOrder validates the cart, groups it into order drafts, persists
// them in one transaction, and for NGO-to-school dispatches debits the
// stock ledger. A failed debit does not roll the orders back: the
// returned *StockAdjustmentError carries the created order ids.
func (s *VendorOrderService) PlaceOrder(ctx context.Context, cart []domain.CartItem, from, to domain.PartyType, schoolID *string) (PlacementResult, error) {
	if !from.IsValid() || !to.IsValid() {
		return PlacementResult{}, ErrInvalidParty
	}
	if from == to {
		return PlacementResult{}, ErrSameParty
	}
	if len(cart) == 0 {
		return PlacementResult{}, ErrEmptyCart
	}

	toys, err := s.resolveCartToys(ctx, cart)
	if err != nil {
		return PlacementResult{}, err
	}

	schoolName, err := s.resolveSchool(ctx, to, schoolID)
	if err != nil {
		return PlacementResult{}, err
	}

	drafts := domain.GroupCart(cart, from, to, schoolID, timefmt.NowIST())
	created, err := s.repo.CreateBatch(ctx, drafts)
	if err != nil {
		return PlacementResult{}, fmt.Errorf("s.repo.CreateBatch -> %w", err)
	}

	ids := make([]string, 0, len(created))
	for _, order := range created {
		ids = append(ids, order.ID)
	}
	result := PlacementResult{OrderIDs: ids}

	if from == domain.PartyNGO && to == domain.PartySchool {
		if err = s.stock.RemoveMany(ctx, cartToStockLines(cart)); err != nil {
			zap.L().Error("stock adjustment failed after order creation",
				zap.Strings("orderIds", ids),
				zap.Error(err))
			return result, &StockAdjustmentError{OrderIDs: ids, Err: err}
		}
		if err = s.repo.SetStockAdjusted(ctx, ids, true); err != nil {
			return result, &StockAdjustmentError{OrderIDs: ids, Err: err}
		}
	}

	s.appendToLedger(from, to, cart, toys, schoolName)

	return result, nil
}

func (s *VendorOrderService) GetOrder(ctx context.Context, id string) (domain.VendorOrder, error) {
	if err := identifier.Validate(id, "order"); err != nil {
		return domain.VendorOrder{}, err
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.VendorOrder{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return order, nil
}

func (s *VendorOrderService) GetOrders(ctx context.Context) ([]domain.VendorOrder, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return orders, nil
}

func (s *VendorOrderService) GetOrdersBySchool(ctx context.Context, schoolID string) ([]domain.VendorOrder, error) {
	if err := identifier.Validate(schoolID, "school"); err != nil {
		return nil, err
	}

	if _, err := s.schools.FindByID(ctx, schoolID); err != nil {
		return nil, fmt.Errorf("s.schools.FindByID -> %w", err)
	}

	orders, err := s.repo.FindBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySchoolID -> %w", err)
	}

	return orders, nil
}

func (s *VendorOrderService) UpdateOrder(ctx context.Context, order domain.VendorOrder, replaceLines, replaceTrail bool) (domain.VendorOrder, error) {
	if err := identifier.Validate(order.ID, "order"); err != nil {
		return domain.VendorOrder{}, err
	}
	if order.From == order.To {
		return domain.VendorOrder{}, ErrSameParty
	}

	updated, err := s.repo.Update(ctx, order, replaceLines, replaceTrail)
	if err != nil {
		return domain.VendorOrder{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *VendorOrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := identifier.Validate(id, "order"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return err
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// resolveCartToys validates every line and loads the referenced toys.
func (s *VendorOrderService) resolveCartToys(ctx context.Context, cart []domain.CartItem) (map[string]domain.Toy, error) {
	toys := make(map[string]domain.Toy, len(cart))
	for _, item := range cart {
		if err := identifier.Validate(item.ToyID, "toy"); err != nil {
			return nil, err
		}
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if item.Price < 0 {
			return nil, ErrInvalidPrice
		}

		if _, ok := toys[item.ToyID]; ok {
			continue
		}
		toy, err := s.toys.FindByID(ctx, item.ToyID)
		if err != nil {
			if errors.Is(err, ErrToyNotFound) {
				return nil, fmt.Errorf("toy %v: %w", item.ToyID, ErrToyNotFound)
			}
			return nil, fmt.Errorf("s.toys.FindByID -> %w", err)
		}
		toys[item.ToyID] = toy
	}

	return toys, nil
}

// resolveSchool enforces that a school id accompanies dispatches to a
// school and nothing else, and returns the school's display name.
func (s *VendorOrderService) resolveSchool(ctx context.Context, to domain.PartyType, schoolID *string) (string, error) {
	if to != domain.PartySchool {
		if schoolID != nil {
			return "", ErrSchoolIDNotAllowed
		}
		return "", nil
	}

	if schoolID == nil {
		return "", ErrSchoolIDRequired
	}
	if err := identifier.Validate(*schoolID, "school"); err != nil {
		return "", err
	}

	school, err := s.schools.FindByID(ctx, *schoolID)
	if err != nil {
		if errors.Is(err, ErrSchoolNotFound) {
			return "", ErrSchoolNotFound
		}
		return "", fmt.Errorf("s.schools.FindByID -> %w", err)
	}
	if school.Name != nil {
		return *school.Name, nil
	}

	return "", nil
}

func (s *VendorOrderService) appendToLedger(from, to domain.PartyType, cart []domain.CartItem, toys map[string]domain.Toy, schoolName string) {
	now := timefmt.NowIST()
	rows := make([]sheet.LedgerRow, 0, len(cart))
	for _, item := range cart {
		toy := toys[item.ToyID]
		rows = append(rows, sheet.LedgerRow{
			Timestamp: now,
			Brand:     toy.Brand,
			SubBrand:  toy.SubBrand,
			ToyName:   toy.Name,
			ToyCode:   toy.CodeName,
			Quantity:  item.Quantity,
			School:    schoolName,
		})
	}

	if err := s.ledger.Append(from, to, rows); err != nil {
		zap.L().Warn("ledger append failed", zap.Error(err))
	}
}

func cartToStockLines(cart []domain.CartItem) []domain.StockLine {
	lines := make([]domain.StockLine, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, domain.StockLine{
			ToyID:    item.ToyID,
			Quantity: item.Quantity,
		})
	}

	return lines
}
