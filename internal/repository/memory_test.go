package repository

import (
	"context"
	"testing"

	"storefront/internal/domain"
)

func TestMemoryStore_ProductCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := domain.Product{Title: "A", Price: 10, Category: "electronics", IsLocal: true}
	if err := store.Create(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("no id")
	}

	got, err := store.GetByID(ctx, p.ID)
	if err != nil || got.ID != p.ID {
		t.Fatalf("get: %v", err)
	}

	p.Price = 12
	if err := store.Update(ctx, &p); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := store.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctx, p.ID); err == nil {
		t.Fatalf("expected not found")
	}
}

func TestMemoryStore_RatingIsCopied(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := domain.Product{Title: "A", Rating: &domain.Rating{Rate: 4, Count: 2}}
	if err := store.Create(ctx, &p); err != nil {
		t.Fatal(err)
	}
	p.Rating.Rate = 1

	got, _ := store.GetByID(ctx, p.ID)
	if got.Rating.Rate != 4 {
		t.Fatalf("stored rating mutated through caller pointer: %v", got.Rating.Rate)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	list, _ := store.List(ctx, ProductFilter{})
	if len(list) == 0 {
		t.Fatalf("seed produced no products")
	}
	for i, p := range list {
		if p.IsLocal {
			t.Fatalf("catalog product %d marked local", p.ID)
		}
		if i > 0 && list[i-1].ID >= p.ID {
			t.Fatalf("list not ordered by id")
		}
	}
	cats, _ := store.Categories(ctx)
	if len(cats) == 0 {
		t.Fatalf("no categories")
	}

	// new products continue after the seeded ids
	p := domain.Product{Title: "Local", IsLocal: true}
	if err := store.Create(ctx, &p); err != nil {
		t.Fatal(err)
	}
	if p.ID <= list[len(list)-1].ID {
		t.Fatalf("id %d collides with catalog", p.ID)
	}
}

func TestList_Filtering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	add := func(title, category string, price float64) {
		p := domain.Product{Title: title, Category: category, Price: price}
		if err := store.Create(ctx, &p); err != nil {
			t.Fatal(err)
		}
	}
	add("Backpack", "mens-clothing", 100)
	add("Bracelet", "jewelery", 50)
	add("Hard Drive", "electronics", 150)

	// title contains
	list, _ := store.List(ctx, ProductFilter{TitleSubstring: "BRAC"})
	if len(list) != 1 || list[0].Title != "Bracelet" {
		t.Fatalf("title filter: %v", list)
	}

	// category
	list, _ = store.List(ctx, ProductFilter{Category: "electronics"})
	if len(list) != 1 || list[0].Category != "electronics" {
		t.Fatalf("category filter: %v", list)
	}

	// min
	min := 100.0
	list, _ = store.List(ctx, ProductFilter{MinPrice: &min})
	for _, p := range list {
		if p.Price < min {
			t.Fatalf("min filter fail")
		}
	}

	// max
	max := 100.0
	list, _ = store.List(ctx, ProductFilter{MaxPrice: &max})
	for _, p := range list {
		if p.Price > max {
			t.Fatalf("max filter fail")
		}
	}
}
