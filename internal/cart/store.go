package cart

import (
	"errors"
	"sync"

	"storefront/internal/domain"
)

var ErrInvalidItem = errors.New("invalid cart item")

// Store корзина, общая для всего процесса. Итоги всегда выводятся из
// текущего набора позиций.
type Store interface {
	Items() []domain.CartItem
	Totals() domain.CartTotals
	Clear()
}

// MemoryStore in-memory реализация корзины
type MemoryStore struct {
	mu    sync.RWMutex
	items []domain.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ Store = (*MemoryStore)(nil)

// Add кладёт товар в корзину; повторное добавление увеличивает количество.
func (s *MemoryStore) Add(item domain.CartItem) error {
	if item.ID <= 0 || !item.Price.Valid || item.Price.Value < 0 ||
		!item.Quantity.Valid || item.Quantity.Value < 1 || item.Quantity.Value != float64(int64(item.Quantity.Value)) {
		return ErrInvalidItem
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity = domain.NewAmount(s.items[i].Quantity.Value + item.Quantity.Value)
			return nil
		}
	}
	s.items = append(s.items, item)
	return nil
}

// Remove убирает позицию целиком
func (s *MemoryStore) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MemoryStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartItem(nil), s.items...)
}

func (s *MemoryStore) Totals() domain.CartTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeTotals(s.items)
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// ComputeTotals sums quantities and price*quantity; invalid operands count as 0.
func ComputeTotals(items []domain.CartItem) domain.CartTotals {
	var count int
	var price float64
	for _, it := range items {
		q := it.Quantity.Float()
		count += int(q)
		price += it.Price.Float() * q
	}
	return domain.CartTotals{TotalItems: count, TotalPrice: domain.NewAmount(price)}
}
