package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCart_VendorPartitionsByBrandPair(t *testing.T) {
	cart := []CartItem{
		{ToyID: "a000000000000001", Quantity: 2, Price: 100, Brand: "BrandA", SubBrand: "sub1"},
		{ToyID: "a000000000000002", Quantity: 1, Price: 150, Brand: "BrandB", SubBrand: "sub1"},
		{ToyID: "a000000000000003", Quantity: 5, Price: 80, Brand: "BrandA", SubBrand: "sub1"},
	}

	orders := GroupCart(cart, PartyVendor, PartyNGO, nil, "2024-01-01 10:00:00")

	require.Len(t, orders, 2)

	// First-seen pair opens the first draft; lines keep relative order.
	assert.Equal(t, "BrandA", orders[0].Brand)
	assert.Equal(t, "sub1", orders[0].SubBrand)
	require.Len(t, orders[0].Lines, 2)
	assert.Equal(t, "a000000000000001", orders[0].Lines[0].ToyID)
	assert.Equal(t, "a000000000000003", orders[0].Lines[1].ToyID)

	assert.Equal(t, "BrandB", orders[1].Brand)
	require.Len(t, orders[1].Lines, 1)
	assert.Equal(t, "a000000000000002", orders[1].Lines[0].ToyID)
}

func TestGroupCart_VendorDistinguishesSubBrand(t *testing.T) {
	cart := []CartItem{
		{ToyID: "a000000000000001", Quantity: 1, Brand: "BrandA", SubBrand: "sub1"},
		{ToyID: "a000000000000002", Quantity: 1, Brand: "BrandA", SubBrand: "sub2"},
	}

	orders := GroupCart(cart, PartyVendor, PartyNGO, nil, "")

	require.Len(t, orders, 2)
	assert.Equal(t, "sub1", orders[0].SubBrand)
	assert.Equal(t, "sub2", orders[1].SubBrand)
}

func TestGroupCart_NonVendorCollapsesToSingleDraft(t *testing.T) {
	schoolID := "b000000000000001"
	cart := []CartItem{
		{ToyID: "a000000000000001", Quantity: 1, Price: 10, Brand: "BrandA", SubBrand: "sub1"},
		{ToyID: "a000000000000002", Quantity: 2, Price: 20, Brand: "BrandB", SubBrand: "sub2"},
		{ToyID: "a000000000000003", Quantity: 3, Price: 30, Brand: "BrandC", SubBrand: "sub3"},
	}

	orders := GroupCart(cart, PartyNGO, PartySchool, &schoolID, "2024-01-01 10:00:00")

	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 3)
	for i, line := range orders[0].Lines {
		assert.Equal(t, cart[i].ToyID, line.ToyID)
		assert.Equal(t, cart[i].Quantity, line.Quantity)
		assert.Equal(t, cart[i].Price, line.Price)
	}
	// Brand is not a distinguishing axis for bulk shipments.
	assert.Empty(t, orders[0].Brand)
	assert.Empty(t, orders[0].SubBrand)
	require.NotNil(t, orders[0].SchoolID)
	assert.Equal(t, schoolID, *orders[0].SchoolID)
}

func TestGroupCart_EveryDraftOpensPending(t *testing.T) {
	cart := []CartItem{
		{ToyID: "a000000000000001", Quantity: 1, Brand: "BrandA", SubBrand: "s"},
		{ToyID: "a000000000000002", Quantity: 1, Brand: "BrandB", SubBrand: "s"},
	}

	orders := GroupCart(cart, PartyVendor, PartyNGO, nil, "2024-06-01 09:30:00")

	require.Len(t, orders, 2)
	for _, order := range orders {
		require.Len(t, order.Status, 1)
		assert.Equal(t, StatusPending, order.Status[0].Status)
		assert.Equal(t, "2024-06-01 09:30:00", order.Status[0].Timestamp)
		assert.Equal(t, StatusPending, order.CurrentStatus())
	}
}

func TestGroupCart_EmptyCart(t *testing.T) {
	assert.Empty(t, GroupCart(nil, PartyVendor, PartyNGO, nil, ""))
	assert.Empty(t, GroupCart([]CartItem{}, PartyNGO, PartySchool, nil, ""))
}

func TestCurrentStatus_LastEntryWins(t *testing.T) {
	order := VendorOrder{
		Status: []StatusEvent{
			{Status: StatusPending},
			{Status: StatusProcessing},
			{Status: StatusDispatched},
		},
	}

	assert.Equal(t, StatusDispatched, order.CurrentStatus())
	assert.Equal(t, OrderStatus(""), (&VendorOrder{}).CurrentStatus())
}
