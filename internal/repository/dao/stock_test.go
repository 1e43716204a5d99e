package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
)

func seedStock(t *testing.T, quantity int) string {
	t.Helper()

	toy := Toy{
		ID:    identifier.New(),
		Brand: "BrandA",
		Name:  "Test Toy",
	}
	require.NoError(t, testDB.Create(&toy).Error)

	entry := StockEntry{
		ID:       identifier.New(),
		ToyID:    toy.ID,
		Quantity: quantity,
	}
	require.NoError(t, testDB.Create(&entry).Error)

	return toy.ID
}

func stockQuantity(t *testing.T, toyID string) int {
	t.Helper()

	var entry StockEntry
	require.NoError(t, testDB.Where("toy_id = ?", toyID).Take(&entry).Error)

	return entry.Quantity
}

func TestStockDAO_DecrementMany(t *testing.T) {
	d := NewStockDAO(testDB)

	toyA := seedStock(t, 5)
	toyB := seedStock(t, 3)

	err := d.DecrementMany(context.Background(), []StockChange{
		{ToyID: toyA, Quantity: 2},
		{ToyID: toyB, Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, stockQuantity(t, toyA))
	assert.Equal(t, 0, stockQuantity(t, toyB))
}

func TestStockDAO_DecrementMany_ShortfallRollsBackBatch(t *testing.T) {
	d := NewStockDAO(testDB)

	toyA := seedStock(t, 5)
	toyB := seedStock(t, 1)

	err := d.DecrementMany(context.Background(), []StockChange{
		{ToyID: toyA, Quantity: 3},
		{ToyID: toyB, Quantity: 2},
	})

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, toyB, insufficient.ToyID)
	assert.Equal(t, 1, insufficient.Available)
	assert.Equal(t, 2, insufficient.Requested)

	// The first line was decrementable on its own; a shortfall later in
	// the batch must leave it untouched.
	assert.Equal(t, 5, stockQuantity(t, toyA))
	assert.Equal(t, 1, stockQuantity(t, toyB))
}

func TestStockDAO_DecrementMany_MissingEntryRollsBackBatch(t *testing.T) {
	d := NewStockDAO(testDB)

	toyA := seedStock(t, 5)
	unknown := identifier.New()

	err := d.DecrementMany(context.Background(), []StockChange{
		{ToyID: toyA, Quantity: 2},
		{ToyID: unknown, Quantity: 1},
	})

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, unknown, insufficient.ToyID)
	assert.Equal(t, 0, insufficient.Available)
	assert.Equal(t, 1, insufficient.Requested)

	assert.Equal(t, 5, stockQuantity(t, toyA))
}

func TestStockDAO_IncrementMany_CreatesAndAdds(t *testing.T) {
	d := NewStockDAO(testDB)

	toyA := seedStock(t, 4)

	err := d.IncrementMany(context.Background(), []StockChange{
		{ToyID: toyA, Quantity: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, stockQuantity(t, toyA))

	toy := Toy{ID: identifier.New(), Brand: "BrandB", Name: "New Toy"}
	require.NoError(t, testDB.Create(&toy).Error)

	err = d.IncrementMany(context.Background(), []StockChange{
		{ToyID: toy.ID, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stockQuantity(t, toy.ID))
}
