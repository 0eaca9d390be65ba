package view

import (
	"go.uber.org/zap"

	"storefront/internal/domain"
)

// Session общее состояние редактирования, передаваемое всем карточкам.
// EditingID == 0 означает, что ни одна карточка не редактируется
// (ID товаров начинаются с 1).
type Session struct {
	EditingID  int64
	Draft      domain.EditedData
	Categories []string
	Read       ReadBindings
	Edit       EditBindings
}

// Aggregator превращает список товаров в карточки. Это структурное
// отображение: равенство проверяется по каждому товару, а не по списку.
type Aggregator struct {
	builder *Builder
	log     *zap.Logger
}

func NewAggregator(builder *Builder, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{builder: builder, log: logger}
}

// Build returns one card per product, keyed by ID, in input order. A repeated
// ID is rendered once.
func (a *Aggregator) Build(products []domain.Product, s Session) []Card {
	cards := make([]Card, 0, len(products))
	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			a.log.Warn("duplicate product key skipped", zap.Int64("product_id", p.ID))
			continue
		}
		seen[p.ID] = struct{}{}
		cards = append(cards, a.Card(p, s))
	}
	return cards
}

// Card builds a single card in the mode the session implies for it.
func (a *Aggregator) Card(p domain.Product, s Session) Card {
	if s.EditingID != 0 && s.EditingID == p.ID {
		return Card{Key: p.ID, Mode: ModeEdit, Edit: a.builder.EditView(s.Draft, s.Categories, s.Edit)}
	}
	return Card{Key: p.ID, Mode: ModeRead, Read: a.builder.ReadView(p, s.Read)}
}

func (a *Aggregator) Forget(id int64) { a.builder.Forget(id) }

func (a *Aggregator) Stats() Stats { return a.builder.Stats() }
