package checkout

import (
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/view"
)

// ShippingCost фиксированная стоимость доставки. Налог не начисляется.
var ShippingCost = decimal.RequireFromString("5.00")

// Totals итоги оформления заказа
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Summary итоги в виде строк для отображения
type Summary struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

func (t Totals) Summary() Summary {
	return Summary{
		Subtotal: view.FormatMoney(t.Subtotal),
		Shipping: view.FormatMoney(t.Shipping),
		Total:    view.FormatMoney(t.Total),
	}
}

// ComputeTotals is the unmemoized calculation. A missing or non-numeric total
// price counts as zero, so the total is never NaN.
func ComputeTotals(totalPrice domain.Amount) Totals {
	subtotal := decimal.NewFromFloat(totalPrice.Float())
	return Totals{
		Subtotal: subtotal,
		Shipping: ShippingCost,
		Total:    subtotal.Add(ShippingCost),
	}
}

// Calculator пересчитывает итоги только при изменении totalPrice
type Calculator struct {
	mu           sync.Mutex
	last         domain.Amount
	totals       Totals
	computed     bool
	computations uint64
}

func NewCalculator() *Calculator { return &Calculator{} }

func (c *Calculator) Totals(totalPrice domain.Amount) Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.computed && sameAmount(c.last, totalPrice) {
		return c.totals
	}
	c.totals = ComputeTotals(totalPrice)
	c.last = totalPrice
	c.computed = true
	c.computations++
	return c.totals
}

// Computations reports how many times totals were actually recomputed.
func (c *Calculator) Computations() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computations
}

func sameAmount(a, b domain.Amount) bool {
	if !a.Valid || !b.Valid {
		return a.Valid == b.Valid
	}
	return a.Value == b.Value
}

// Line позиция в сводке заказа
type Line struct {
	ID       int64              `json:"id"`
	Title    string             `json:"title"`
	Image    *view.ImageElement `json:"image"`
	Quantity string             `json:"quantity"`
	Total    decimal.Decimal    `json:"-"`
	Display  string             `json:"total"`
}

// Lines computes price × quantity per cart line with invalid operands coerced to 0.
func Lines(items []domain.CartItem) []Line {
	out := make([]Line, 0, len(items))
	for _, it := range items {
		price := decimal.NewFromFloat(it.Price.Float())
		qty := it.Quantity.Float()
		total := price.Mul(decimal.NewFromFloat(qty))
		out = append(out, Line{
			ID:       it.ID,
			Title:    it.Title,
			Image:    view.NewImageElement(it.Image, it.Title, view.LinePlaceholder),
			Quantity: strconv.FormatFloat(qty, 'f', -1, 64),
			Total:    total,
			Display:  view.FormatMoney(total),
		})
	}
	return out
}
