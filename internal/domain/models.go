package domain

import (
	"bytes"
	"encoding/json"
	"math"
)

// Product представляет товар витрины. IsLocal отмечает товары, созданные
// владельцем магазина: только их можно редактировать и удалять.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	IsLocal     bool    `json:"isLocal"`
}

// Rating средняя оценка (0..5) и количество отзывов
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

// EditedData черновик редактируемых полей товара. Цена хранится как
// введённый текст и разбирается только при сохранении.
type EditedData struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Amount числовое значение из внешнего источника. Всё, что не является
// конечным числом, считается невалидным.
type Amount struct {
	Value float64
	Valid bool
}

// NewAmount валидное значение
func NewAmount(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}
	}
	return Amount{Value: v, Valid: true}
}

// Float возвращает значение или 0 для невалидного
func (a Amount) Float() float64 {
	if !a.Valid || math.IsNaN(a.Value) || math.IsInf(a.Value, 0) {
		return 0
	}
	return a.Value
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON never fails: strings, objects and null decode as invalid.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' || data[0] == 'n' {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*a = NewAmount(v)
	return nil
}

// CartItem позиция корзины
type CartItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Price    Amount `json:"price"`
	Quantity Amount `json:"quantity"`
}

// CartTotals производные итоги корзины, вычисляются при каждом чтении
type CartTotals struct {
	TotalItems int    `json:"totalItems"`
	TotalPrice Amount `json:"totalPrice"`
}
