package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func products() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "A", Price: 1, Rating: &domain.Rating{Rate: 4.5, Count: 3}},
		{ID: 2, Title: "B", Price: 2, IsLocal: true},
		{ID: 3, Title: "C", Price: 3, IsLocal: true},
	}
}

func keys(cards []Card) []int64 {
	out := make([]int64, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Key)
	}
	return out
}

func TestAggregator_KeysFollowInputOrder(t *testing.T) {
	a := newTestAggregator(t)
	list := products()
	cards := a.Build(list, Session{})
	assert.Equal(t, []int64{1, 2, 3}, keys(cards))

	reversed := []domain.Product{list[2], list[1], list[0]}
	cards = a.Build(reversed, Session{})
	assert.Equal(t, []int64{3, 2, 1}, keys(cards))
}

func TestAggregator_NewListReferenceDoesNotRecompute(t *testing.T) {
	a := newTestAggregator(t)
	first := a.Build(products(), Session{})
	require.Equal(t, uint64(3), a.Stats().ReadBuilds)

	// fresh slice, reordered and filtered: per-product equality still holds
	filtered := []domain.Product{products()[2], products()[0]}
	second := a.Build(filtered, Session{})
	assert.Equal(t, uint64(3), a.Stats().ReadBuilds)
	assert.Same(t, first[2].Read, second[0].Read)
	assert.Same(t, first[0].Read, second[1].Read)
}

func TestAggregator_OnlyChangedProductRecomputes(t *testing.T) {
	a := newTestAggregator(t)
	first := a.Build(products(), Session{})

	changed := products()
	changed[1].Price = 20
	second := a.Build(changed, Session{})

	assert.Equal(t, uint64(4), a.Stats().ReadBuilds)
	assert.Same(t, first[0].Read, second[0].Read)
	assert.NotSame(t, first[1].Read, second[1].Read)
	assert.Equal(t, "$20.00", second[1].Read.Price)
	assert.Same(t, first[2].Read, second[2].Read)

	// nested rating pointer compares by value
	again := products()
	again[0].Rating = &domain.Rating{Rate: 4.5, Count: 3}
	again[1].Price = 20
	third := a.Build(again, Session{})
	assert.Same(t, second[0].Read, third[0].Read)
}

func TestAggregator_EditingOneCardLeavesOthersAlone(t *testing.T) {
	a := newTestAggregator(t)
	first := a.Build(products(), Session{})

	s := Session{EditingID: 2, Draft: domain.EditedData{Title: "B"}, Categories: []string{"x"}}
	second := a.Build(products(), s)

	assert.Equal(t, ModeRead, second[0].Mode)
	assert.Equal(t, ModeEdit, second[1].Mode)
	assert.Equal(t, ModeRead, second[2].Mode)
	assert.Same(t, first[0].Read, second[0].Read)
	assert.Same(t, first[2].Read, second[2].Read)

	stats := a.Stats()
	assert.Equal(t, uint64(3), stats.ReadBuilds)
	assert.Equal(t, uint64(1), stats.EditBuilds)

	// draft changes rebuild only the edit view
	s.Draft.Title = "B2"
	third := a.Build(products(), s)
	stats = a.Stats()
	assert.Equal(t, uint64(3), stats.ReadBuilds)
	assert.Equal(t, uint64(2), stats.EditBuilds)
	assert.Equal(t, "B2", third[1].Edit.Title.Value)

	// same draft again is a hit
	a.Build(products(), s)
	assert.Equal(t, uint64(2), a.Stats().EditBuilds)

	// switching the session to another product moves the single edit card
	s.EditingID = 3
	fourth := a.Build(products(), s)
	edits := 0
	for _, c := range fourth {
		if c.Mode == ModeEdit {
			edits++
			assert.Equal(t, int64(3), c.Key)
		}
	}
	assert.Equal(t, 1, edits)
	assert.Same(t, first[1].Read, fourth[1].Read)
}

func TestAggregator_BindingGenerationsAreIndependent(t *testing.T) {
	a := newTestAggregator(t)
	s := Session{EditingID: 2, Draft: domain.EditedData{Title: "B"}}
	a.Build(products(), s)

	s.Edit.Generation++
	a.Build(products(), s)
	stats := a.Stats()
	assert.Equal(t, uint64(2), stats.ReadBuilds)
	assert.Equal(t, uint64(2), stats.EditBuilds)

	s.Read.Generation++
	a.Build(products(), s)
	stats = a.Stats()
	assert.Equal(t, uint64(4), stats.ReadBuilds)
	assert.Equal(t, uint64(2), stats.EditBuilds)

	// category list is an edit-view dependency only
	s.Categories = []string{"electronics"}
	a.Build(products(), s)
	stats = a.Stats()
	assert.Equal(t, uint64(4), stats.ReadBuilds)
	assert.Equal(t, uint64(3), stats.EditBuilds)
}

func TestAggregator_DuplicatesAndForget(t *testing.T) {
	a := newTestAggregator(t)
	list := append(products(), products()[0])
	cards := a.Build(list, Session{})
	assert.Equal(t, []int64{1, 2, 3}, keys(cards))

	a.Forget(1)
	a.Build(products(), Session{})
	assert.Equal(t, uint64(4), a.Stats().ReadBuilds)
}
