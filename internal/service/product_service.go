package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotEditable товар из внешнего каталога менять нельзя
	ErrNotEditable = errors.New("product is not editable")
)

// ProductService инкапсулирует бизнес-логику вокруг товаров
type ProductService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	log        *zap.Logger
}

func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{repo: repo, categories: categories, log: logger}
}

func validPrice(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Create добавляет локальный товар владельца магазина
func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Title == "" || !validPrice(p.Price) {
		return nil, ErrInvalidInput
	}
	cp := p
	cp.ID = 0
	cp.IsLocal = true
	cp.Rating = nil
	if err := s.repo.Create(ctx, &cp); err != nil {
		return nil, err
	}
	s.log.Info("product created", zap.Int64("product_id", cp.ID))
	return &cp, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Update меняет редактируемые поля. Рейтинг и происхождение товара
// остаются прежними.
func (s *ProductService) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID <= 0 || p.Title == "" || !validPrice(p.Price) {
		return nil, ErrInvalidInput
	}
	current, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !current.IsLocal {
		return nil, ErrNotEditable
	}
	cp := *current
	cp.Title = p.Title
	cp.Price = p.Price
	cp.Category = p.Category
	cp.Description = p.Description
	if p.Image != "" {
		cp.Image = p.Image
	}
	if err := s.repo.Update(ctx, &cp); err != nil {
		return nil, err
	}
	s.log.Info("product updated", zap.Int64("product_id", cp.ID))
	return &cp, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.IsLocal {
		return ErrNotEditable
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", zap.Int64("product_id", id))
	return nil
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.categories.Categories(ctx)
}
