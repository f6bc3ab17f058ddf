package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
)

var _ port.CatalogReader = (*CatalogService)(nil)
var _ port.CatalogWriter = (*CatalogService)(nil)

// CatalogService serves product reads through the cache slot and keeps
// the slot coherent by invalidating it after every successful mutation.
type CatalogService struct {
	products port.ProductsRepository
	cache    port.ProductsCache
}

func NewCatalog(
	products port.ProductsRepository, cache port.ProductsCache,
) CatalogService {
	return CatalogService{products, cache}
}

func (s CatalogService) ListProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogService.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ps, ok := s.cache.Get(ctx); ok {
		return ps, nil
	}

	ps, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(ctx, ps)
	return ps, nil
}

func (s CatalogService) GetProduct(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "CatalogService.GetProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.products.FindProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s CatalogService) CreateProduct(
	ctx context.Context, name string, stock int, price int64,
) (domain.Product, error) {
	const op = "CatalogService.CreateProduct"

	if err := validateProduct(name, stock, price); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p := domain.Product{
		ID:    uuid.NewString(),
		Name:  name,
		Stock: stock,
		Price: price,
	}

	p, err := s.products.CreateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx)
	return p, nil
}

func (s CatalogService) UpdateProduct(
	ctx context.Context, productID, name string, stock int, price int64,
) (domain.Product, error) {
	const op = "CatalogService.UpdateProduct"

	if err := validateProduct(name, stock, price); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p := domain.Product{
		ID:    productID,
		Name:  name,
		Stock: stock,
		Price: price,
	}

	p, err := s.products.UpdateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx)
	return p, nil
}

func (s CatalogService) DeleteProduct(
	ctx context.Context, productID string,
) error {
	const op = "CatalogService.DeleteProduct"

	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx)
	return nil
}

func validateProduct(name string, stock int, price int64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}
