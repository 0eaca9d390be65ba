package service

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/navigation"
	"storefront/internal/repository"
	"storefront/internal/view"
)

// CatalogService собирает карточки витрины из каталога и сессии
// редактирования. Обработчики карточек создаются один раз, поэтому
// их поколение не меняется и кэш карточек переиспользуется между запросами.
type CatalogService struct {
	products *ProductService
	edits    *EditSession
	cards    *view.Aggregator
	log      *zap.Logger

	read view.ReadBindings
	edit view.EditBindings
}

func NewCatalogService(products *ProductService, edits *EditSession, cards *view.Aggregator, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &CatalogService{products: products, edits: edits, cards: cards, log: logger}
	c.read = view.ReadBindings{
		Generation: 1,
		OnEdit: func(ctx context.Context, p domain.Product) error {
			_, err := edits.Begin(ctx, p.ID)
			return err
		},
		OnDelete: c.Delete,
	}
	c.edit = view.EditBindings{
		Generation:    1,
		OnChange:      edits.Change,
		OnImageUpload: edits.UploadImage,
		OnCommit: func(ctx context.Context) error {
			_, err := edits.Commit(ctx)
			return err
		},
		OnDiscard: edits.Discard,
	}
	return c
}

func (c *CatalogService) session(ctx context.Context) (view.Session, error) {
	categories, err := c.products.Categories(ctx)
	if err != nil {
		return view.Session{}, err
	}
	st := c.edits.State()
	return view.Session{
		EditingID:  st.EditingID,
		Draft:      st.Draft,
		Categories: categories,
		Read:       c.read,
		Edit:       c.edit,
	}, nil
}

// Cards returns the card view-models of the products matching f.
func (c *CatalogService) Cards(ctx context.Context, f repository.ProductFilter) ([]view.Card, error) {
	list, err := c.products.List(ctx, f)
	if err != nil {
		return nil, err
	}
	s, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	return c.cards.Build(list, s), nil
}

func (c *CatalogService) Card(ctx context.Context, id int64) (view.Card, error) {
	p, err := c.products.GetByID(ctx, id)
	if err != nil {
		return view.Card{}, err
	}
	s, err := c.session(ctx)
	if err != nil {
		return view.Card{}, err
	}
	return c.cards.Card(*p, s), nil
}

// EditCard returns the card currently in edit mode.
func (c *CatalogService) EditCard(ctx context.Context) (view.Card, error) {
	id := c.edits.State().EditingID
	if id == 0 {
		return view.Card{}, ErrNoSession
	}
	card, err := c.Card(ctx, id)
	if err != nil {
		return view.Card{}, err
	}
	if card.Mode != view.ModeEdit {
		// session moved between the two reads
		return view.Card{}, ErrNoSession
	}
	return card, nil
}

// Click dispatches a click on a product card.
func (c *CatalogService) Click(ctx context.Context, id int64, target string, nav navigation.Navigator) (*view.Event, error) {
	card, err := c.Card(ctx, id)
	if err != nil {
		return nil, err
	}
	return card.Click(ctx, target, nav)
}

// Delete removes a local product and everything derived from it.
func (c *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := c.products.Delete(ctx, id); err != nil {
		return err
	}
	c.edits.Forget(id)
	c.cards.Forget(id)
	return nil
}

func (c *CatalogService) Stats() view.Stats { return c.cards.Stats() }
