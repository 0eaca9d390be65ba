package service

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/navigation"
	"storefront/internal/repository"
	"storefront/internal/view"
)

func setupCS(t *testing.T) (*CatalogService, *ProductService, *EditSession) {
	t.Helper()
	ps, _ := setupPS(t)
	es := NewEditSession(ps, nil)
	b, err := view.NewBuilder(32, nil)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	return NewCatalogService(ps, es, view.NewAggregator(b, nil), nil), ps, es
}

func TestCatalog_CardsReuseViews(t *testing.T) {
	ctx := context.Background()
	cs, _, _ := setupCS(t)

	first, err := cs.Cards(ctx, repository.ProductFilter{})
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(first) != 6 {
		t.Fatalf("expected 6 seeded cards, got %d", len(first))
	}
	second, _ := cs.Cards(ctx, repository.ProductFilter{Category: "electronics"})
	for _, c := range second {
		for _, f := range first {
			if f.Key == c.Key && f.Read != c.Read {
				t.Fatalf("card %d rebuilt without a change", c.Key)
			}
		}
	}
	st := cs.Stats()
	if st.ReadBuilds != 6 || st.ReadHits != uint64(len(second)) {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestCatalog_ClickFlow(t *testing.T) {
	ctx := context.Background()
	cs, ps, es := setupCS(t)
	nav := navigation.NewHistory()
	p, _ := ps.Create(ctx, domain.Product{Title: "Planter", Price: 18.5})

	// catalog card navigates to its detail page
	if _, err := cs.Click(ctx, 1, view.TargetBody, nav); err != nil {
		t.Fatalf("click: %v", err)
	}
	if nav.Last() != navigation.ProductPath(1) {
		t.Fatalf("expected detail navigation, got %v", nav.Entries())
	}

	// edit affordance opens the session instead of navigating
	ev, err := cs.Click(ctx, p.ID, view.TargetEdit, nav)
	if err != nil {
		t.Fatalf("edit click: %v", err)
	}
	if !ev.DefaultPrevented() || es.State().EditingID != p.ID || len(nav.Entries()) != 1 {
		t.Fatalf("edit click misbehaved: %+v %v", es.State(), nav.Entries())
	}

	card, err := cs.EditCard(ctx)
	if err != nil {
		t.Fatalf("edit card: %v", err)
	}
	if err := card.Edit.Input(FieldPrice, "20"); err != nil {
		t.Fatalf("input: %v", err)
	}
	if _, err := cs.Click(ctx, p.ID, view.TargetSave, nav); err != nil {
		t.Fatalf("save: %v", err)
	}
	updated, _ := ps.GetByID(ctx, p.ID)
	if updated.Price != 20 {
		t.Fatalf("save not applied: %+v", updated)
	}
	if _, err := cs.EditCard(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected session ended, got %v", err)
	}

	// delete affordance removes the product and its card
	if _, err := cs.Click(ctx, p.ID, view.TargetDelete, nav); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := ps.GetByID(ctx, p.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected deleted, got %v", err)
	}
}

func TestCatalog_DeleteEndsSession(t *testing.T) {
	ctx := context.Background()
	cs, ps, es := setupCS(t)
	p, _ := ps.Create(ctx, domain.Product{Title: "Planter", Price: 18.5})
	_, _ = es.Begin(ctx, p.ID)

	if err := cs.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if es.State().EditingID != 0 {
		t.Fatalf("deleting the edited product must end the session")
	}
	if err := cs.Delete(ctx, 1); !errors.Is(err, ErrNotEditable) {
		t.Fatalf("expected ErrNotEditable, got %v", err)
	}
}
