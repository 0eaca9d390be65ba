package view

import (
	"math"
	"sync"
)

// Star одна ячейка рейтинга
type Star string

const (
	StarFull  Star = "full"
	StarHalf  Star = "half"
	StarEmpty Star = "empty"
)

// MaxStars ширина строки рейтинга
const MaxStars = 5

// RenderStars maps a rating in [0,5] to exactly MaxStars cells: floor(r) full,
// one half when the fraction is at least .5, the rest empty.
func RenderStars(rating float64) []Star {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	if rating > MaxStars {
		rating = MaxStars
	}
	full := int(math.Floor(rating))
	half := math.Mod(rating, 1) >= 0.5

	stars := make([]Star, 0, MaxStars)
	for i := 0; i < full; i++ {
		stars = append(stars, StarFull)
	}
	if half {
		stars = append(stars, StarHalf)
	}
	for len(stars) < MaxStars {
		stars = append(stars, StarEmpty)
	}
	return stars
}

// StarRenderer мемоизированный RenderStars. Создаётся один раз на
// потребителя; результат для одинакового рейтинга переиспользуется.
type StarRenderer struct {
	mu    sync.Mutex
	cache map[float64][]Star
}

func NewStarRenderer() *StarRenderer {
	return &StarRenderer{cache: make(map[float64][]Star)}
}

// Render returns a shared slice; callers must not modify it.
func (r *StarRenderer) Render(rating float64) []Star {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.cache[rating]; ok {
		return s
	}
	s := RenderStars(rating)
	if !math.IsNaN(rating) {
		r.cache[rating] = s
	}
	return s
}
