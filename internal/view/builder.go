package view

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

// DefaultCacheSize сколько карточек держит таблица мемоизации
const DefaultCacheSize = 512

// Stats счётчики пересборок и попаданий в кэш
type Stats struct {
	ReadBuilds uint64 `json:"readBuilds"`
	ReadHits   uint64 `json:"readHits"`
	EditBuilds uint64 `json:"editBuilds"`
	EditHits   uint64 `json:"editHits"`
}

type readEntry struct {
	key  uint64
	view *ReadView
}

// Builder строит view-model карточек. Режим просмотра кэшируется по ID
// товара и зависит только от товара и ReadBindings; режим редактирования
// зависит только от черновика, списка категорий и EditBindings.
type Builder struct {
	stars *StarRenderer
	read  *lru.Cache
	log   *zap.Logger

	mu       sync.Mutex
	editKey  uint64
	editView *EditView

	readBuilds, readHits, editBuilds, editHits atomic.Uint64
}

func NewBuilder(size int, logger *zap.Logger) (*Builder, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("card cache: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{stars: NewStarRenderer(), read: cache, log: logger}, nil
}

// ReadView returns the cached read view for p unless p or the bindings changed.
func (b *Builder) ReadView(p domain.Product, bind ReadBindings) *ReadView {
	key := productKey(p, bind.Generation)
	if v, ok := b.read.Get(p.ID); ok {
		if e := v.(readEntry); e.key == key {
			b.readHits.Add(1)
			return e.view
		}
	}
	view := buildReadView(p, b.stars, bind)
	b.read.Add(p.ID, readEntry{key: key, view: view})
	b.readBuilds.Add(1)
	b.log.Debug("card view recomputed", zap.Int64("product_id", p.ID), zap.String("mode", string(ModeRead)))
	return view
}

// EditView keeps a single entry: only one card is edited at a time.
func (b *Builder) EditView(d domain.EditedData, categories []string, bind EditBindings) *EditView {
	key := draftKey(d, categories, bind.Generation)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.editView != nil && b.editKey == key {
		b.editHits.Add(1)
		return b.editView
	}
	b.editView = buildEditView(d, categories, bind)
	b.editKey = key
	b.editBuilds.Add(1)
	b.log.Debug("card view recomputed", zap.String("mode", string(ModeEdit)))
	return b.editView
}

// Forget drops the cached view of a removed product.
func (b *Builder) Forget(id int64) {
	b.read.Remove(id)
}

func (b *Builder) Stats() Stats {
	return Stats{
		ReadBuilds: b.readBuilds.Load(),
		ReadHits:   b.readHits.Load(),
		EditBuilds: b.editBuilds.Load(),
		EditHits:   b.editHits.Load(),
	}
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher() *hasher { return &hasher{d: xxhash.New()} }

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

// length prefix keeps ("ab","c") and ("a","bc") apart
func (h *hasher) str(s string) {
	h.u64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) f64(v float64) { h.u64(math.Float64bits(v)) }

func (h *hasher) flag(v bool) {
	if v {
		h.u64(1)
		return
	}
	h.u64(0)
}

func productKey(p domain.Product, gen uint64) uint64 {
	h := newHasher()
	h.u64(gen)
	h.u64(uint64(p.ID))
	h.str(p.Title)
	h.f64(p.Price)
	h.str(p.Image)
	h.flag(p.Rating != nil)
	if p.Rating != nil {
		h.f64(p.Rating.Rate)
		h.u64(uint64(p.Rating.Count))
	}
	h.str(p.Category)
	h.str(p.Description)
	h.flag(p.IsLocal)
	return h.d.Sum64()
}

func draftKey(d domain.EditedData, categories []string, gen uint64) uint64 {
	h := newHasher()
	h.u64(gen)
	h.str(d.Title)
	h.str(d.Price)
	h.str(d.Category)
	h.str(d.Description)
	h.str(d.Image)
	h.u64(uint64(len(categories)))
	for _, c := range categories {
		h.str(c)
	}
	return h.d.Sum64()
}
