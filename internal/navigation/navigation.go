package navigation

import (
	"strconv"
	"sync"
)

// Известные пути витрины
const (
	Home = "/"
	Cart = "/CartPage"
)

// ProductPath путь страницы товара
func ProductPath(id int64) string {
	return "/product/" + strconv.FormatInt(id, 10)
}

// Navigator меняет текущий экран
type Navigator interface {
	Navigate(dest string)
}

// DefaultHistorySize сколько последних переходов хранит History
const DefaultHistorySize = 256

// History записывает последние переходы в кольцевой буфер фиксированного
// размера. HTTP-клиент забирает их вместе с состоянием экрана.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []string
	start   int
}

func NewHistory() *History { return NewHistorySize(DefaultHistorySize) }

// NewHistorySize keeps at most size destinations; size <= 0 means the default.
func NewHistorySize(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{limit: size}
}

func (h *History) Navigate(dest string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) < h.limit {
		h.entries = append(h.entries, dest)
		return
	}
	// full: overwrite the oldest
	h.entries[h.start] = dest
	h.start = (h.start + 1) % h.limit
}

// Last returns the most recent destination, or "" when nothing was visited.
func (h *History) Last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[(h.start+len(h.entries)-1)%len(h.entries)]
}

// Entries returns the retained destinations, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.entries))
	out = append(out, h.entries[h.start:]...)
	return append(out, h.entries[:h.start]...)
}

// Count reports how many retained entries are dest.
func (h *History) Count(dest string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, e := range h.entries {
		if e == dest {
			n++
		}
	}
	return n
}
