package service

import (
	"context"
	"fmt"

	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
)

var _ port.OrderPlacer = (*OrderService)(nil)

// OrderService places orders atomically against the inventory.
// The repository owns the transaction; the service validates input and
// invalidates the product-list cache after a committed stock change.
type OrderService struct {
	orders port.OrdersRepository
	cache  port.ProductsCache
}

func NewOrders(
	orders port.OrdersRepository, cache port.ProductsCache,
) OrderService {
	return OrderService{orders, cache}
}

func (s OrderService) PlaceOrder(
	ctx context.Context, userID, productID string, quantity int,
) (domain.Order, error) {
	const op = "OrderService.PlaceOrder"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if productID == "" {
		return domain.Order{}, fmt.Errorf(
			"%s: %w: productId is required", op, domain.ErrValidation,
		)
	}
	if quantity <= 0 {
		return domain.Order{}, fmt.Errorf(
			"%s: %w: quantity must be positive", op, domain.ErrValidation,
		)
	}

	o, err := s.orders.PlaceOrder(ctx, userID, productID, quantity)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx)
	return o, nil
}

func (s OrderService) ListOrders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "OrderService.ListOrders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	os, err := s.orders.ListOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return os, nil
}
