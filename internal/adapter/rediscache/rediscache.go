package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
	"github.com/redis/go-redis/v9"
)

// productsKey is the single slot holding the serialized full product list.
const productsKey = "data:products"

var _ port.ProductsCache = (*ProductsCache)(nil)

// ProductsCache is a latency optimization, never a source of truth.
// Every redis failure degrades to a miss and is only logged.
type ProductsCache struct {
	client *redis.Client
}

func New(ctx context.Context, addr string) (ProductsCache, error) {
	const op = "ProductsCache"
	log := slog.With("op", op)

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return ProductsCache{}, fmt.Errorf(
			"%s: cache is unavailable: %w", op, err,
		)
	}
	log.Info("cache is available")
	return ProductsCache{client}, nil
}

func (c ProductsCache) Get(ctx context.Context) ([]domain.Product, bool) {
	const op = "ProductsCache.Get"
	log := slog.With("op", op)

	data, err := c.client.Get(ctx, productsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn("cache read failed", "err", err)
		}
		return nil, false
	}

	var ps []domain.Product
	if err := json.Unmarshal(data, &ps); err != nil {
		log.Warn("corrupted cache entry, dropping", "err", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return ps, true
}

// Set stores the list without expiry: explicit invalidation is the only
// eviction path.
func (c ProductsCache) Set(ctx context.Context, ps []domain.Product) {
	const op = "ProductsCache.Set"
	log := slog.With("op", op)

	data, err := json.Marshal(ps)
	if err != nil {
		log.Warn("failed to serialize products", "err", err)
		return
	}

	if err := c.client.Set(ctx, productsKey, data, 0).Err(); err != nil {
		log.Warn("cache write failed", "err", err)
	}
}

func (c ProductsCache) Invalidate(ctx context.Context) {
	const op = "ProductsCache.Invalidate"
	log := slog.With("op", op)

	if err := c.client.Del(ctx, productsKey).Err(); err != nil {
		log.Warn("cache invalidation failed", "err", err)
	}
}

func (c ProductsCache) Close() {
	const op = "ProductsCache.Close"
	log := slog.With("op", op)

	log.Info("closing cache client...")

	if err := c.client.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("cache client is closed")
}
