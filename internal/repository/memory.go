package repository

import (
	"context"
	"sort"
	"sync"

	"storefront/internal/domain"
)

// MemoryStore in-memory каталог товаров, список категорий и генератор ID
type MemoryStore struct {
	mu           sync.RWMutex
	nextProdID   int64
	productsByID map[int64]domain.Product
	categories   []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextProdID:   1,
		productsByID: make(map[int64]domain.Product),
	}
}

// Ensure interfaces
var (
	_ ProductRepository  = (*MemoryStore)(nil)
	_ CategoryRepository = (*MemoryStore)(nil)
)

// Create assigns the next ID. Products that arrive with an ID (seed catalog)
// keep it and move the generator past it.
func (m *MemoryStore) Create(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == 0 {
		p.ID = m.nextProdID
	}
	if p.ID >= m.nextProdID {
		m.nextProdID = p.ID + 1
	}
	m.productsByID[p.ID] = cloneProduct(*p)
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := cloneProduct(p)
	return &cp, nil
}

func (m *MemoryStore) Update(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productsByID[p.ID]; !ok {
		return ErrNotFound
	}
	m.productsByID[p.ID] = cloneProduct(*p)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productsByID[id]; !ok {
		return ErrNotFound
	}
	delete(m.productsByID, id)
	return nil
}

// List returns matching products ordered by ID.
func (m *MemoryStore) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0, len(m.productsByID))
	for _, p := range m.productsByID {
		if !f.match(p) {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SetCategories заменяет список категорий
func (m *MemoryStore) SetCategories(categories []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append([]string(nil), categories...)
}

func (m *MemoryStore) Categories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.categories...), nil
}

// rating is a pointer, copy it so callers never share it with the store
func cloneProduct(p domain.Product) domain.Product {
	if p.Rating != nil {
		r := *p.Rating
		p.Rating = &r
	}
	return p
}
