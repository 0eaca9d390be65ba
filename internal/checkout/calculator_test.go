package checkout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(domain.NewAmount(25.5))
	s := totals.Summary()
	assert.Equal(t, "$25.50", s.Subtotal)
	assert.Equal(t, "$5.00", s.Shipping)
	assert.Equal(t, "$30.50", s.Total)
}

func TestLines(t *testing.T) {
	items := []domain.CartItem{
		{ID: 1, Title: "A", Price: domain.NewAmount(10), Quantity: domain.NewAmount(2)},
		{ID: 2, Title: "B", Price: domain.NewAmount(5.5), Quantity: domain.NewAmount(1)},
	}
	lines := Lines(items)
	require.Len(t, lines, 2)
	assert.Equal(t, "$20.00", lines[0].Display)
	assert.Equal(t, "2", lines[0].Quantity)
	assert.Equal(t, "$5.50", lines[1].Display)

	lines[0].Image.OnError()
	assert.Equal(t, "https://placehold.co/64x64/cccccc/333333?text=No+Image", lines[0].Image.Src())
}

func TestNonNumericInputsCoerceToZero(t *testing.T) {
	var snapshot struct {
		TotalPrice domain.Amount     `json:"totalPrice"`
		Items      []domain.CartItem `json:"cartItems"`
	}
	raw := `{
		"totalPrice": "invalid",
		"cartItems": [
			{"id": 1, "title": "A", "price": "ten", "quantity": 2},
			{"id": 2, "title": "B", "price": 3, "quantity": null},
			{"id": 3, "title": "C"}
		]
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))
	assert.False(t, snapshot.TotalPrice.Valid)

	s := ComputeTotals(snapshot.TotalPrice).Summary()
	assert.Equal(t, "$0.00", s.Subtotal)
	assert.Equal(t, "$5.00", s.Shipping)
	assert.Equal(t, "$5.00", s.Total)

	for _, l := range Lines(snapshot.Items) {
		assert.Equal(t, "$0.00", l.Display, "line %d", l.ID)
		assert.NotContains(t, l.Display, "NaN")
	}
}

func TestCalculator_RecomputesOnlyOnChange(t *testing.T) {
	c := NewCalculator()
	c.Totals(domain.NewAmount(10))
	c.Totals(domain.NewAmount(10))
	assert.Equal(t, uint64(1), c.Computations())

	got := c.Totals(domain.NewAmount(12))
	assert.Equal(t, uint64(2), c.Computations())
	assert.Equal(t, "17.00", got.Total.StringFixed(2))

	c.Totals(domain.Amount{})
	c.Totals(domain.Amount{Value: 99})
	assert.Equal(t, uint64(3), c.Computations())
}
