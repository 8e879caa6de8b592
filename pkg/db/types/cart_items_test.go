package dbtypes

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCartEntriesScanNilYieldsEmptySlice(t *testing.T) {
	var entries CartEntries
	require.NoError(t, entries.Scan(nil))
	require.NotNil(t, entries)
	require.Len(t, entries, 0)
}

func TestCartEntriesRoundTrip(t *testing.T) {
	price := decimal.RequireFromString("9.99")
	entries := CartEntries{
		{MenuItemID: uuid.New(), Quantity: 2, Name: "espresso", Price: &price},
		{MenuItemID: uuid.New(), Quantity: 1},
	}

	value, err := entries.Value()
	require.NoError(t, err)

	var decoded CartEntries
	require.NoError(t, decoded.Scan(value))
	require.Len(t, decoded, 2)
	require.Equal(t, entries[0].MenuItemID, decoded[0].MenuItemID)
	require.Equal(t, 2, decoded[0].Quantity)
	require.NotNil(t, decoded[0].Price)
	require.True(t, decoded[0].Price.Equal(price))
	require.Nil(t, decoded[1].Price)
}

func TestCartEntriesScanRejectsUnknownType(t *testing.T) {
	var entries CartEntries
	require.Error(t, entries.Scan(42))
}
