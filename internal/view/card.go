package view

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/navigation"
)

// Mode режим карточки
type Mode string

const (
	ModeRead Mode = "read"
	ModeEdit Mode = "edit"
)

// Click targets on a card.
const (
	TargetBody   = ""
	TargetEdit   = "edit"
	TargetDelete = "delete"
	TargetSave   = "save"
	TargetCancel = "cancel"
)

var ErrUnknownTarget = errors.New("unknown click target")

// ReadBindings обработчики карточки в режиме просмотра. Функции в Go не
// сравниваются, поэтому владелец увеличивает Generation при их замене.
type ReadBindings struct {
	Generation uint64
	OnEdit     func(ctx context.Context, p domain.Product) error
	OnDelete   func(ctx context.Context, id int64) error
}

// EditBindings обработчики карточки в режиме редактирования
type EditBindings struct {
	Generation    uint64
	OnChange      func(field, value string) error
	OnImageUpload func(data []byte) error
	OnCommit      func(ctx context.Context) error
	OnDiscard     func()
}

// Action кнопка карточки
type Action struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Title string `json:"title,omitempty"`
}

// RatingBlock звёзды, средняя оценка и число отзывов
type RatingBlock struct {
	Stars   []Star `json:"stars"`
	Average string `json:"average"`
	Count   int64  `json:"count"`
}

// ReadView карточка в режиме просмотра
type ReadView struct {
	Image   *ImageElement `json:"image"`
	Title   string        `json:"title"`
	Rating  *RatingBlock  `json:"rating,omitempty"`
	Price   string        `json:"price"`
	Href    string        `json:"href,omitempty"`
	Actions []Action      `json:"actions,omitempty"`

	product  domain.Product
	bindings ReadBindings
}

// Navigable reports whether the card body links to the product page.
func (v *ReadView) Navigable() bool { return v.Href != "" }

// Field поле формы
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Placeholder string `json:"placeholder,omitempty"`
	Min         string `json:"min,omitempty"`
	Step        string `json:"step,omitempty"`
	Rows        int    `json:"rows,omitempty"`
}

// Option вариант выбора категории
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Select выпадающий список
type Select struct {
	Name    string   `json:"name"`
	Value   string   `json:"value"`
	Options []Option `json:"options"`
}

// ImageControl замена картинки с немедленным предпросмотром
type ImageControl struct {
	Accept  string `json:"accept"`
	Preview string `json:"preview,omitempty"`
	Hint    string `json:"hint"`
}

// EditView карточка в режиме редактирования
type EditView struct {
	Image       ImageControl `json:"image"`
	Title       Field        `json:"title"`
	Price       Field        `json:"price"`
	Category    Select       `json:"category"`
	Description Field        `json:"description"`
	Actions     []Action     `json:"actions"`

	bindings EditBindings
}

// Input forwards a field change to the owner of the draft.
func (v *EditView) Input(field, value string) error {
	if v.bindings.OnChange == nil {
		return nil
	}
	return v.bindings.OnChange(field, value)
}

// Upload forwards a replacement image.
func (v *EditView) Upload(data []byte) error {
	if v.bindings.OnImageUpload == nil {
		return nil
	}
	return v.bindings.OnImageUpload(data)
}

// Card одна карточка списка, ровно один из Read/Edit заполнен
type Card struct {
	Key  int64     `json:"key"`
	Mode Mode      `json:"mode"`
	Read *ReadView `json:"read,omitempty"`
	Edit *EditView `json:"edit,omitempty"`
}

// Event результат клика по карточке. Location заполнен, только если этот
// клик привёл к переходу.
type Event struct {
	Target           string
	Location         string
	defaultPrevented bool
}

func (e *Event) PreventDefault()        { e.defaultPrevented = true }
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Click dispatches a click on target. Affordance clicks run their handler and
// prevent the default action, so only a plain body click on a navigable card
// reaches nav.
func (c Card) Click(ctx context.Context, target string, nav navigation.Navigator) (*Event, error) {
	ev := &Event{Target: target}
	switch c.Mode {
	case ModeEdit:
		if c.Edit == nil {
			return ev, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
		}
		ev.PreventDefault()
		b := c.Edit.bindings
		switch target {
		case TargetSave:
			if b.OnCommit != nil {
				return ev, b.OnCommit(ctx)
			}
		case TargetCancel:
			if b.OnDiscard != nil {
				b.OnDiscard()
			}
		case TargetBody:
		default:
			return ev, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
		}
		return ev, nil
	}

	v := c.Read
	if v == nil {
		return ev, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	switch target {
	case TargetEdit, TargetDelete:
		if !v.product.IsLocal {
			return ev, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
		}
		ev.PreventDefault()
		var err error
		if target == TargetEdit && v.bindings.OnEdit != nil {
			err = v.bindings.OnEdit(ctx, v.product)
		}
		if target == TargetDelete && v.bindings.OnDelete != nil {
			err = v.bindings.OnDelete(ctx, v.product.ID)
		}
		if err != nil {
			return ev, err
		}
	case TargetBody:
	default:
		return ev, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	if v.Navigable() && !ev.DefaultPrevented() && nav != nil {
		nav.Navigate(v.Href)
		ev.Location = v.Href
	}
	return ev, nil
}

func buildReadView(p domain.Product, stars *StarRenderer, b ReadBindings) *ReadView {
	v := &ReadView{
		Image:    NewImageElement(p.Image, p.Title, CardPlaceholder),
		Title:    p.Title,
		Price:    FormatPrice(p.Price),
		product:  p,
		bindings: b,
	}
	if p.Rating != nil {
		v.Rating = &RatingBlock{
			Stars:   stars.Render(p.Rating.Rate),
			Average: FormatRate(p.Rating.Rate),
			Count:   p.Rating.Count,
		}
	}
	if p.IsLocal {
		v.Actions = []Action{
			{Name: TargetEdit, Label: "Edit", Title: "Edit Product"},
			{Name: TargetDelete, Label: "Delete", Title: "Delete Product"},
		}
	} else {
		v.Href = navigation.ProductPath(p.ID)
	}
	return v
}

func buildEditView(d domain.EditedData, categories []string, b EditBindings) *EditView {
	opts := make([]Option, 0, len(categories)+1)
	opts = append(opts, Option{Value: "", Label: "Select Category"})
	for _, c := range categories {
		opts = append(opts, Option{Value: c, Label: CategoryLabel(c)})
	}
	hint := "No image selected. Click to upload."
	if d.Image != "" {
		hint = "Click or drag to change image"
	}
	return &EditView{
		Image:       ImageControl{Accept: "image/*", Preview: d.Image, Hint: hint},
		Title:       Field{Name: "title", Type: "text", Value: d.Title, Placeholder: "Product Title"},
		Price:       Field{Name: "price", Type: "number", Value: d.Price, Placeholder: "Price", Min: "0", Step: "0.01"},
		Category:    Select{Name: "category", Value: d.Category, Options: opts},
		Description: Field{Name: "description", Type: "textarea", Value: d.Description, Placeholder: "Description", Rows: 3},
		Actions: []Action{
			{Name: TargetSave, Label: "Save"},
			{Name: TargetCancel, Label: "Cancel"},
		},
		bindings: b,
	}
}
