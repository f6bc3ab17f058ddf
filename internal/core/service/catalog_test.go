package service_test

import (
	"testing"

	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testProducts = []domain.Product{
	{ID: "p1", Name: "Widget", Stock: 10, Price: 500},
	{ID: "p2", Name: "Gadget", Stock: 3, Price: 42},
}

func TestCatalogServiceListProducts(t *testing.T) {

	t.Run("CacheHitSkipsStore", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)
		cache.On("Get", t.Context()).Return(testProducts, true)

		s := service.NewCatalog(products, cache)
		ps, err := s.ListProducts(t.Context())
		require.NoError(t, err)
		assert.Equal(t, testProducts, ps)

		products.AssertNotCalled(t, "ListProducts", mock.Anything)
	})

	t.Run("CacheMissRepopulates", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)
		cache.On("Get", t.Context()).Return([]domain.Product(nil), false)
		products.On("ListProducts", t.Context()).Return(testProducts, nil)
		cache.On("Set", t.Context(), testProducts).Return()

		s := service.NewCatalog(products, cache)
		ps, err := s.ListProducts(t.Context())
		require.NoError(t, err)
		assert.Equal(t, testProducts, ps)

		cache.AssertCalled(t, "Set", t.Context(), testProducts)
	})

	t.Run("StoreFailurePropagates", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)
		cache.On("Get", t.Context()).Return([]domain.Product(nil), false)
		products.On("ListProducts", t.Context()).
			Return([]domain.Product(nil), assert.AnError)

		s := service.NewCatalog(products, cache)
		_, err := s.ListProducts(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)

		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})
}

func TestCatalogServiceMutations(t *testing.T) {

	t.Run("CreateInvalidatesCache", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)
		products.On("CreateProduct", t.Context(), mock.Anything).
			Return(testProducts[0], nil)
		cache.On("Invalidate", t.Context()).Return()

		s := service.NewCatalog(products, cache)
		p, err := s.CreateProduct(t.Context(), "Widget", 10, 500)
		require.NoError(t, err)
		assert.Equal(t, testProducts[0], p)

		cache.AssertCalled(t, "Invalidate", t.Context())
	})

	t.Run("CreateMintsID", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)
		products.On("CreateProduct", t.Context(),
			mock.MatchedBy(func(p domain.Product) bool {
				return p.ID != "" && p.Name == "Widget"
			})).Return(testProducts[0], nil)
		cache.On("Invalidate", t.Context()).Return()

		s := service.NewCatalog(products, cache)
		_, err := s.CreateProduct(t.Context(), "Widget", 10, 500)
		require.NoError(t, err)
	})

	t.Run("CreateRejectsBadInput", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)

		s := service.NewCatalog(products, cache)

		_, err := s.CreateProduct(t.Context(), "", 10, 500)
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = s.CreateProduct(t.Context(), "Widget", -1, 500)
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = s.CreateProduct(t.Context(), "Widget", 10, -1)
		assert.ErrorIs(t, err, domain.ErrValidation)

		products.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("UpdateInvalidatesCache", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)
		products.On("UpdateProduct", t.Context(), mock.Anything).
			Return(testProducts[0], nil)
		cache.On("Invalidate", t.Context()).Return()

		s := service.NewCatalog(products, cache)
		_, err := s.UpdateProduct(t.Context(), "p1", "Widget", 8, 500)
		require.NoError(t, err)

		cache.AssertCalled(t, "Invalidate", t.Context())
	})

	t.Run("DeleteInvalidatesCache", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)
		products.On("DeleteProduct", t.Context(), "p1").Return(nil)
		cache.On("Invalidate", t.Context()).Return()

		s := service.NewCatalog(products, cache)
		require.NoError(t, s.DeleteProduct(t.Context(), "p1"))

		cache.AssertCalled(t, "Invalidate", t.Context())
	})

	t.Run("FailedMutationKeepsCache", func(t *testing.T) {
		products := new(MockProductsRepository)
		cache := new(MockProductsCache)
		products.On("DeleteProduct", t.Context(), "p1").
			Return(domain.ErrNotFound)

		s := service.NewCatalog(products, cache)
		err := s.DeleteProduct(t.Context(), "p1")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}
