package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"storefront/internal/domain"
)

//go:embed catalog.json
var catalogJSON []byte

type catalog struct {
	Categories []string         `json:"categories"`
	Products   []domain.Product `json:"products"`
}

// Seed наполняет хранилище внешним каталогом. Товары каталога не локальные:
// их нельзя редактировать, зато по ним можно перейти на страницу товара.
func (m *MemoryStore) Seed(ctx context.Context) error {
	var c catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}
	m.SetCategories(c.Categories)
	for i := range c.Products {
		p := c.Products[i]
		p.IsLocal = false
		if err := m.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	return nil
}
