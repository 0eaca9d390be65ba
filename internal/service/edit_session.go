package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

var (
	ErrNoSession    = errors.New("no product is being edited")
	ErrInvalidImage = errors.New("upload is not an image")
)

// MaxImageSize верхняя граница загружаемой картинки
const MaxImageSize = 5 << 20

// Draft fields accepted by Change.
const (
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldDescription = "description"
)

// EditState снимок сессии редактирования. EditingID == 0, если сессии нет.
type EditState struct {
	EditingID int64             `json:"editingId"`
	Draft     domain.EditedData `json:"draft"`
}

// EditSession единственная сессия редактирования товара. Все изменения
// выбранного ID проходят через begin/end, поэтому одновременно
// редактируется не больше одного товара.
type EditSession struct {
	products *ProductService
	log      *zap.Logger

	mu        sync.Mutex
	editingID int64
	draft     domain.EditedData
}

func NewEditSession(products *ProductService, logger *zap.Logger) *EditSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EditSession{products: products, log: logger}
}

// Begin starts editing id. Any session on another product ends without saving.
func (e *EditSession) Begin(ctx context.Context, id int64) (EditState, error) {
	p, err := e.products.GetByID(ctx, id)
	if err != nil {
		return EditState{}, err
	}
	if !p.IsLocal {
		return EditState{}, ErrNotEditable
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editingID != 0 && e.editingID != id {
		e.log.Info("edit session replaced", zap.Int64("from", e.editingID), zap.Int64("to", id))
	}
	e.set(id, domain.EditedData{
		Title:       p.Title,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
	})
	return e.stateLocked(), nil
}

// set is the only place the editing id changes.
func (e *EditSession) set(id int64, draft domain.EditedData) {
	e.editingID = id
	e.draft = draft
}

func (e *EditSession) Change(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editingID == 0 {
		return ErrNoSession
	}
	switch field {
	case FieldTitle:
		e.draft.Title = value
	case FieldPrice:
		e.draft.Price = value
	case FieldCategory:
		e.draft.Category = value
	case FieldDescription:
		e.draft.Description = value
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}
	return nil
}

// UploadImage replaces the draft image with a data URL preview of data.
func (e *EditSession) UploadImage(data []byte) error {
	if len(data) == 0 || len(data) > MaxImageSize {
		return ErrInvalidImage
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("%w: %s", ErrInvalidImage, mt.String())
	}
	preview := "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editingID == 0 {
		return ErrNoSession
	}
	e.draft.Image = preview
	return nil
}

// Commit validates the draft and saves it. The session ends only on success.
func (e *EditSession) Commit(ctx context.Context) (*domain.Product, error) {
	e.mu.Lock()
	id, draft := e.editingID, e.draft
	e.mu.Unlock()
	if id == 0 {
		return nil, ErrNoSession
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(draft.Price), 64)
	if err != nil || !validPrice(price) {
		return nil, fmt.Errorf("%w: price %q", ErrInvalidInput, draft.Price)
	}
	updated, err := e.products.Update(ctx, domain.Product{
		ID:          id,
		Title:       strings.TrimSpace(draft.Title),
		Price:       price,
		Category:    draft.Category,
		Description: draft.Description,
		Image:       draft.Image,
	})
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// a concurrent Begin moved the session elsewhere; leave it alone
	if e.editingID == id {
		e.set(0, domain.EditedData{})
	}
	return updated, nil
}

func (e *EditSession) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.set(0, domain.EditedData{})
}

// Forget ends the session if it belongs to a deleted product.
func (e *EditSession) Forget(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editingID == id {
		e.set(0, domain.EditedData{})
	}
}

func (e *EditSession) State() EditState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *EditSession) stateLocked() EditState {
	return EditState{EditingID: e.editingID, Draft: e.draft}
}
