package view

import (
	"encoding/json"
	"sync"
)

// ImageElement картинка с однократной подменой на заглушку при ошибке загрузки
type ImageElement struct {
	mu          sync.Mutex
	src         string
	alt         string
	placeholder string
	failed      bool
}

func NewImageElement(src, alt, placeholder string) *ImageElement {
	return &ImageElement{src: src, alt: alt, placeholder: placeholder}
}

// OnError swaps in the placeholder. After the first call the element stops
// handling errors, so a broken placeholder cannot loop.
func (i *ImageElement) OnError() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.failed {
		return
	}
	i.failed = true
	i.src = i.placeholder
}

func (i *ImageElement) Src() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.src
}

func (i *ImageElement) Failed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.failed
}

func (i *ImageElement) MarshalJSON() ([]byte, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return json.Marshal(struct {
		Src         string `json:"src"`
		Alt         string `json:"alt"`
		Placeholder string `json:"placeholder"`
		Failed      bool   `json:"failed"`
	}{i.src, i.alt, i.placeholder, i.failed})
}
