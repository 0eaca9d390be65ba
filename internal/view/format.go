package view

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	// CardPlaceholder подставляется вместо картинки карточки, которая не загрузилась
	CardPlaceholder = "https://placehold.co/200x200/cccccc/333333?text=No+Image"
	// LinePlaceholder то же для миниатюр в оформлении заказа
	LinePlaceholder = "https://placehold.co/64x64/cccccc/333333?text=No+Image"
)

// FormatPrice renders a price with two decimals, e.g. "$12.50".
func FormatPrice(v float64) string {
	return FormatMoney(decimal.NewFromFloat(v))
}

func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatRate renders an average rating with one decimal.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// CategoryLabel turns a category identifier into a display label:
// separators become spaces and every word is capitalized ("home-garden" -> "Home Garden").
func CategoryLabel(category string) string {
	s := strings.ReplaceAll(category, "-", " ")
	out := []rune(s)
	start := true
	for i, r := range out {
		word := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if word && start {
			out[i] = unicode.ToUpper(r)
		}
		start = !word
	}
	return string(out)
}
