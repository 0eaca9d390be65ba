package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func item(id int64, price, qty float64) domain.CartItem {
	return domain.CartItem{ID: id, Title: "item", Price: domain.NewAmount(price), Quantity: domain.NewAmount(qty)}
}

func TestMemoryStore_TotalsFollowItems(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Add(item(1, 10, 2)))
	require.NoError(t, s.Add(item(2, 5.5, 1)))

	totals := s.Totals()
	assert.Equal(t, 3, totals.TotalItems)
	assert.InDelta(t, 25.5, totals.TotalPrice.Float(), 1e-9)

	// same id merges quantity
	require.NoError(t, s.Add(item(2, 5.5, 1)))
	totals = s.Totals()
	assert.Equal(t, 4, totals.TotalItems)
	assert.InDelta(t, 31, totals.TotalPrice.Float(), 1e-9)
	assert.Len(t, s.Items(), 2)

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.Equal(t, 2, s.Totals().TotalItems)

	s.Clear()
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.Totals().TotalItems)
	assert.Zero(t, s.Totals().TotalPrice.Float())
}

func TestMemoryStore_RejectsInvalidItems(t *testing.T) {
	s := NewMemoryStore()
	assert.ErrorIs(t, s.Add(item(0, 1, 1)), ErrInvalidItem)
	assert.ErrorIs(t, s.Add(item(1, -1, 1)), ErrInvalidItem)
	assert.ErrorIs(t, s.Add(item(1, 1, 0)), ErrInvalidItem)
	assert.ErrorIs(t, s.Add(item(1, 1, 1.5)), ErrInvalidItem)
	assert.ErrorIs(t, s.Add(domain.CartItem{ID: 1, Quantity: domain.NewAmount(1)}), ErrInvalidItem)
	assert.Empty(t, s.Items())
}

func TestComputeTotals_CoercesInvalidOperands(t *testing.T) {
	totals := ComputeTotals([]domain.CartItem{
		{ID: 1, Price: domain.Amount{}, Quantity: domain.NewAmount(3)},
		{ID: 2, Price: domain.NewAmount(4), Quantity: domain.NewAmount(2)},
	})
	assert.Equal(t, 5, totals.TotalItems)
	assert.InDelta(t, 8, totals.TotalPrice.Float(), 1e-9)
}
