package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/repository"
)

type fakeStockRepo struct {
	entries map[string]domain.StockEntry

	incremented  []domain.StockLine
	decremented  []domain.StockLine
	decrementErr error
}

func (f *fakeStockRepo) FindByToyID(_ context.Context, toyID string) (domain.StockEntry, error) {
	entry, ok := f.entries[toyID]
	if !ok {
		return domain.StockEntry{}, repository.ErrStockEntryNotFound
	}
	return entry, nil
}

func (f *fakeStockRepo) FindAll(_ context.Context) ([]domain.StockEntry, error) {
	var entries []domain.StockEntry
	for _, entry := range f.entries {
		entries = append(entries, entry)
	}
	return entries, nil
}

func (f *fakeStockRepo) Assign(_ context.Context, toyID string, quantity int) (domain.StockEntry, bool, error) {
	_, existed := f.entries[toyID]
	entry := domain.StockEntry{ToyID: toyID, Quantity: quantity}
	if f.entries == nil {
		f.entries = map[string]domain.StockEntry{}
	}
	f.entries[toyID] = entry
	return entry, !existed, nil
}

func (f *fakeStockRepo) IncrementMany(_ context.Context, lines []domain.StockLine) error {
	f.incremented = append(f.incremented, lines...)
	return nil
}

func (f *fakeStockRepo) DecrementMany(_ context.Context, lines []domain.StockLine) error {
	if f.decrementErr != nil {
		return f.decrementErr
	}
	f.decremented = append(f.decremented, lines...)
	return nil
}

func (f *fakeStockRepo) DeleteByToyID(_ context.Context, toyID string) error {
	if _, ok := f.entries[toyID]; !ok {
		return repository.ErrStockEntryNotFound
	}
	delete(f.entries, toyID)
	return nil
}

type fakeToyCatalog struct {
	missing string
}

func (f *fakeToyCatalog) Exists(_ context.Context, _ []string) (string, error) {
	return f.missing, nil
}

type fakeOrderMarker struct {
	exists   bool
	adjusted []string
}

func (f *fakeOrderMarker) Exists(_ context.Context, _ string) (bool, error) {
	return f.exists, nil
}

func (f *fakeOrderMarker) SetStockAdjusted(_ context.Context, ids []string, _ bool) error {
	f.adjusted = append(f.adjusted, ids...)
	return nil
}

func TestStockService_GetAvailable(t *testing.T) {
	repo := &fakeStockRepo{entries: map[string]domain.StockEntry{
		"a000000000000001": {ToyID: "a000000000000001", Quantity: 7},
	}}
	svc := NewStockService(repo, &fakeToyCatalog{}, &fakeOrderMarker{exists: true})

	quantity, err := svc.GetAvailable(context.Background(), "a000000000000001")
	require.NoError(t, err)
	assert.Equal(t, 7, quantity)

	// A toy that was never stocked has zero on hand, not an error.
	quantity, err = svc.GetAvailable(context.Background(), "a000000000000002")
	require.NoError(t, err)
	assert.Equal(t, 0, quantity)

	_, err = svc.GetAvailable(context.Background(), "not-an-id")
	var invalidErr *identifier.InvalidError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestStockService_Assign(t *testing.T) {
	repo := &fakeStockRepo{}
	svc := NewStockService(repo, &fakeToyCatalog{}, &fakeOrderMarker{exists: true})

	entry, created, err := svc.Assign(context.Background(), "a000000000000001", 5)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 5, entry.Quantity)

	entry, created, err = svc.Assign(context.Background(), "a000000000000001", 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, entry.Quantity)

	_, _, err = svc.Assign(context.Background(), "a000000000000001", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestStockService_Assign_UnknownToy(t *testing.T) {
	svc := NewStockService(&fakeStockRepo{}, &fakeToyCatalog{missing: "a000000000000009"}, &fakeOrderMarker{exists: true})

	_, _, err := svc.Assign(context.Background(), "a000000000000009", 5)
	assert.ErrorIs(t, err, ErrToyNotFound)
}

func TestStockService_AddMany(t *testing.T) {
	repo := &fakeStockRepo{}
	marker := &fakeOrderMarker{exists: true}
	svc := NewStockService(repo, &fakeToyCatalog{}, marker)

	lines := []domain.StockLine{
		{ToyID: "a000000000000001", Quantity: 3},
		{ToyID: "a000000000000002", Quantity: 2},
	}
	err := svc.AddMany(context.Background(), "c000000000000001", lines)
	require.NoError(t, err)

	assert.Equal(t, lines, repo.incremented)
	assert.Equal(t, []string{"c000000000000001"}, marker.adjusted)
}

func TestStockService_AddMany_OrderNotFound(t *testing.T) {
	svc := NewStockService(&fakeStockRepo{}, &fakeToyCatalog{}, &fakeOrderMarker{exists: false})

	err := svc.AddMany(context.Background(), "c000000000000001", []domain.StockLine{
		{ToyID: "a000000000000001", Quantity: 3},
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestStockService_AddMany_RejectsZeroQuantity(t *testing.T) {
	svc := NewStockService(&fakeStockRepo{}, &fakeToyCatalog{}, &fakeOrderMarker{exists: true})

	err := svc.AddMany(context.Background(), "c000000000000001", []domain.StockLine{
		{ToyID: "a000000000000001", Quantity: 0},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestStockService_RemoveMany_PropagatesShortfall(t *testing.T) {
	repo := &fakeStockRepo{
		decrementErr: &repository.InsufficientStockError{
			ToyID:     "a000000000000001",
			Available: 1,
			Requested: 4,
		},
	}
	svc := NewStockService(repo, &fakeToyCatalog{}, &fakeOrderMarker{exists: true})

	err := svc.RemoveMany(context.Background(), []domain.StockLine{
		{ToyID: "a000000000000001", Quantity: 4},
	})

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "a000000000000001", insufficient.ToyID)
	assert.Equal(t, 1, insufficient.Available)
	assert.Equal(t, 4, insufficient.Requested)
}

func TestStockService_CheckAvailability(t *testing.T) {
	repo := &fakeStockRepo{entries: map[string]domain.StockEntry{
		"a000000000000001": {ToyID: "a000000000000001", Quantity: 5},
		"a000000000000002": {ToyID: "a000000000000002", Quantity: 1},
	}}
	svc := NewStockService(repo, &fakeToyCatalog{}, &fakeOrderMarker{exists: true})

	shortfalls, err := svc.CheckAvailability(context.Background(), []domain.StockLine{
		{ToyID: "a000000000000001", Quantity: 5},
		{ToyID: "a000000000000002", Quantity: 3},
		{ToyID: "a000000000000003", Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, shortfalls, 2)
	assert.Equal(t, "a000000000000002", shortfalls[0].ToyID)
	assert.Equal(t, "Insufficient stock", shortfalls[0].Message)
	assert.Equal(t, 1, shortfalls[0].Available)
	assert.Equal(t, 3, shortfalls[0].Requested)

	assert.Equal(t, "a000000000000003", shortfalls[1].ToyID)
	assert.Equal(t, "Toy not found in stock", shortfalls[1].Message)
	assert.Equal(t, 0, shortfalls[1].Available)
}

func TestStockService_CheckAvailability_AllCovered(t *testing.T) {
	repo := &fakeStockRepo{entries: map[string]domain.StockEntry{
		"a000000000000001": {ToyID: "a000000000000001", Quantity: 5},
	}}
	svc := NewStockService(repo, &fakeToyCatalog{}, &fakeOrderMarker{exists: true})

	shortfalls, err := svc.CheckAvailability(context.Background(), []domain.StockLine{
		{ToyID: "a000000000000001", Quantity: 5},
	})
	require.NoError(t, err)
	assert.Empty(t, shortfalls)
}

func TestStockService_CheckAvailability_AcceptsZeroQuantity(t *testing.T) {
	repo := &fakeStockRepo{entries: map[string]domain.StockEntry{
		"a000000000000001": {ToyID: "a000000000000001", Quantity: 0},
	}}
	svc := NewStockService(repo, &fakeToyCatalog{}, &fakeOrderMarker{exists: true})

	// A zero-quantity line is a no-op for RemoveMany, so the precheck
	// must accept it too.
	lines := []domain.StockLine{{ToyID: "a000000000000001", Quantity: 0}}

	shortfalls, err := svc.CheckAvailability(context.Background(), lines)
	require.NoError(t, err)
	assert.Empty(t, shortfalls)

	require.NoError(t, svc.RemoveMany(context.Background(), lines))
}

func TestStockService_DeleteEntry_NotFound(t *testing.T) {
	svc := NewStockService(&fakeStockRepo{}, &fakeToyCatalog{}, &fakeOrderMarker{exists: true})

	err := svc.DeleteEntry(context.Background(), "a000000000000001")
	assert.True(t, errors.Is(err, ErrStockEntryNotFound))
}
