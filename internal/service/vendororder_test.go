package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/repository"
	"github.com/toybridge/toybridge-api/internal/sheet"
)

type fakeVendorOrderRepo struct {
	created  []domain.VendorOrder
	adjusted []string

	nextID int
}

func (f *fakeVendorOrderRepo) CreateBatch(_ context.Context, orders []domain.VendorOrder) ([]domain.VendorOrder, error) {
	for i := range orders {
		f.nextID++
		orders[i].ID = fmt.Sprintf("d%015x", f.nextID)
	}
	f.created = append(f.created, orders...)
	return orders, nil
}

func (f *fakeVendorOrderRepo) FindByID(_ context.Context, id string) (domain.VendorOrder, error) {
	for _, order := range f.created {
		if order.ID == id {
			return order, nil
		}
	}
	return domain.VendorOrder{}, repository.ErrOrderNotFound
}

func (f *fakeVendorOrderRepo) FindAll(_ context.Context) ([]domain.VendorOrder, error) {
	return f.created, nil
}

func (f *fakeVendorOrderRepo) FindBySchoolID(_ context.Context, schoolID string) ([]domain.VendorOrder, error) {
	var orders []domain.VendorOrder
	for _, order := range f.created {
		if order.SchoolID != nil && *order.SchoolID == schoolID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeVendorOrderRepo) Update(_ context.Context, order domain.VendorOrder, _, _ bool) (domain.VendorOrder, error) {
	return order, nil
}

func (f *fakeVendorOrderRepo) SetStockAdjusted(_ context.Context, ids []string, _ bool) error {
	f.adjusted = append(f.adjusted, ids...)
	return nil
}

func (f *fakeVendorOrderRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeToyFinder struct {
	toys map[string]domain.Toy
}

func (f *fakeToyFinder) FindByID(_ context.Context, id string) (domain.Toy, error) {
	toy, ok := f.toys[id]
	if !ok {
		return domain.Toy{}, repository.ErrToyNotFound
	}
	return toy, nil
}

type fakeSchoolFinder struct {
	schools map[string]domain.School
}

func (f *fakeSchoolFinder) FindByID(_ context.Context, id string) (domain.School, error) {
	school, ok := f.schools[id]
	if !ok {
		return domain.School{}, repository.ErrSchoolNotFound
	}
	return school, nil
}

type fakeStockDebiter struct {
	removed []domain.StockLine
	err     error
}

func (f *fakeStockDebiter) RemoveMany(_ context.Context, lines []domain.StockLine) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, lines...)
	return nil
}

type fakeLedger struct {
	from domain.PartyType
	to   domain.PartyType
	rows []sheet.LedgerRow
	err  error
}

func (f *fakeLedger) Append(from, to domain.PartyType, rows []sheet.LedgerRow) error {
	if f.err != nil {
		return f.err
	}
	f.from = from
	f.to = to
	f.rows = append(f.rows, rows...)
	return nil
}

func newVendorOrderFixture() (*VendorOrderService, *fakeVendorOrderRepo, *fakeStockDebiter, *fakeLedger) {
	repo := &fakeVendorOrderRepo{}
	stock := &fakeStockDebiter{}
	ledger := &fakeLedger{}
	name := "Test School"
	svc := NewVendorOrderService(
		repo,
		&fakeToyFinder{toys: map[string]domain.Toy{
			"a000000000000001": {ID: "a000000000000001", Brand: "BrandA", SubBrand: "sub1", Name: "Blocks", CodeName: "BLK"},
			"a000000000000002": {ID: "a000000000000002", Brand: "BrandB", SubBrand: "sub2", Name: "Puzzle", CodeName: "PZL"},
		}},
		&fakeSchoolFinder{schools: map[string]domain.School{
			"b000000000000001": {ID: "b000000000000001", Code: "SCH-1", Name: &name},
		}},
		stock,
		ledger,
	)

	return svc, repo, stock, ledger
}

func TestPlaceOrder_NGOToSchoolDebitsStock(t *testing.T) {
	svc, repo, stock, ledger := newVendorOrderFixture()
	schoolID := "b000000000000001"

	cart := []domain.CartItem{
		{ToyID: "a000000000000001", Quantity: 2, Price: 100},
		{ToyID: "a000000000000002", Quantity: 1, Price: 150},
	}

	result, err := svc.PlaceOrder(context.Background(), cart, domain.PartyNGO, domain.PartySchool, &schoolID)
	require.NoError(t, err)
	require.Len(t, result.OrderIDs, 1)

	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.StatusPending, repo.created[0].CurrentStatus())

	require.Len(t, stock.removed, 2)
	assert.Equal(t, "a000000000000001", stock.removed[0].ToyID)
	assert.Equal(t, 2, stock.removed[0].Quantity)

	assert.Equal(t, result.OrderIDs, repo.adjusted)

	assert.Equal(t, domain.PartyNGO, ledger.from)
	assert.Equal(t, domain.PartySchool, ledger.to)
	require.Len(t, ledger.rows, 2)
	assert.Equal(t, "Blocks", ledger.rows[0].ToyName)
	assert.Equal(t, "Test School", ledger.rows[0].School)
}

func TestPlaceOrder_ShortStockKeepsOrders(t *testing.T) {
	svc, repo, stock, _ := newVendorOrderFixture()
	stock.err = &repository.InsufficientStockError{
		ToyID:     "a000000000000001",
		Available: 1,
		Requested: 2,
	}
	schoolID := "b000000000000001"

	cart := []domain.CartItem{
		{ToyID: "a000000000000001", Quantity: 2, Price: 100},
	}

	result, err := svc.PlaceOrder(context.Background(), cart, domain.PartyNGO, domain.PartySchool, &schoolID)

	// The order survives the failed debit and the caller learns its id.
	var adjustErr *StockAdjustmentError
	require.ErrorAs(t, err, &adjustErr)
	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{repo.created[0].ID}, adjustErr.OrderIDs)
	assert.Equal(t, adjustErr.OrderIDs, result.OrderIDs)
	assert.Empty(t, repo.adjusted)

	var insufficient *InsufficientStockError
	assert.ErrorAs(t, err, &insufficient)
}

func TestPlaceOrder_VendorShipmentSkipsStock(t *testing.T) {
	svc, repo, stock, ledger := newVendorOrderFixture()

	cart := []domain.CartItem{
		{ToyID: "a000000000000001", Quantity: 2, Price: 100, Brand: "BrandA", SubBrand: "sub1"},
		{ToyID: "a000000000000002", Quantity: 1, Price: 150, Brand: "BrandB", SubBrand: "sub2"},
	}

	result, err := svc.PlaceOrder(context.Background(), cart, domain.PartyVendor, domain.PartyNGO, nil)
	require.NoError(t, err)

	// One draft per (brand, subBrand) pair for vendor shipments.
	assert.Len(t, result.OrderIDs, 2)
	assert.Len(t, repo.created, 2)
	assert.Empty(t, stock.removed)
	assert.Empty(t, repo.adjusted)

	assert.Equal(t, domain.PartyVendor, ledger.from)
	assert.Equal(t, domain.PartyNGO, ledger.to)
}

func TestPlaceOrder_Validation(t *testing.T) {
	svc, _, _, _ := newVendorOrderFixture()
	schoolID := "b000000000000001"
	cart := []domain.CartItem{{ToyID: "a000000000000001", Quantity: 1, Price: 10}}

	_, err := svc.PlaceOrder(context.Background(), cart, domain.PartyVendor, domain.PartyVendor, nil)
	assert.ErrorIs(t, err, ErrSameParty)

	_, err = svc.PlaceOrder(context.Background(), cart, "warehouse", domain.PartyNGO, nil)
	assert.ErrorIs(t, err, ErrInvalidParty)

	_, err = svc.PlaceOrder(context.Background(), nil, domain.PartyNGO, domain.PartySchool, &schoolID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.PlaceOrder(context.Background(), cart, domain.PartyNGO, domain.PartySchool, nil)
	assert.ErrorIs(t, err, ErrSchoolIDRequired)

	_, err = svc.PlaceOrder(context.Background(), cart, domain.PartyVendor, domain.PartyNGO, &schoolID)
	assert.ErrorIs(t, err, ErrSchoolIDNotAllowed)

	missing := []domain.CartItem{{ToyID: "a00000000000000f", Quantity: 1, Price: 10}}
	_, err = svc.PlaceOrder(context.Background(), missing, domain.PartyVendor, domain.PartyNGO, nil)
	assert.ErrorIs(t, err, ErrToyNotFound)

	zeroQty := []domain.CartItem{{ToyID: "a000000000000001", Quantity: 0, Price: 10}}
	_, err = svc.PlaceOrder(context.Background(), zeroQty, domain.PartyVendor, domain.PartyNGO, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPlaceOrder_UnknownSchool(t *testing.T) {
	svc, repo, _, _ := newVendorOrderFixture()
	schoolID := "b00000000000000f"
	cart := []domain.CartItem{{ToyID: "a000000000000001", Quantity: 1, Price: 10}}

	_, err := svc.PlaceOrder(context.Background(), cart, domain.PartyNGO, domain.PartySchool, &schoolID)
	assert.ErrorIs(t, err, ErrSchoolNotFound)
	assert.Empty(t, repo.created)
}

func TestPlaceOrder_LedgerFailureIsSwallowed(t *testing.T) {
	svc, repo, _, ledger := newVendorOrderFixture()
	ledger.err = fmt.Errorf("workbook locked")

	cart := []domain.CartItem{{ToyID: "a000000000000001", Quantity: 1, Price: 10, Brand: "BrandA", SubBrand: "sub1"}}

	result, err := svc.PlaceOrder(context.Background(), cart, domain.PartyVendor, domain.PartyNGO, nil)
	require.NoError(t, err)
	assert.Len(t, result.OrderIDs, 1)
	assert.Len(t, repo.created, 1)
}

func TestUpdateOrder_RejectsSameParty(t *testing.T) {
	svc, _, _, _ := newVendorOrderFixture()

	_, err := svc.UpdateOrder(context.Background(), domain.VendorOrder{
		ID:   "d000000000000001",
		From: domain.PartyNGO,
		To:   domain.PartyNGO,
	}, false, false)
	assert.ErrorIs(t, err, ErrSameParty)
}
