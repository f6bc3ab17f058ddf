package rediscache

import (
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/niksmo/shop/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var products = []domain.Product{
	{ID: "p1", Name: "Widget", Stock: 10, Price: 500},
	{ID: "p2", Name: "Gadget", Stock: 3, Price: 42},
}

func TestProductsCacheGet(t *testing.T) {

	t.Run("Hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := ProductsCache{client}

		data, err := json.Marshal(products)
		require.NoError(t, err)
		mock.ExpectGet(productsKey).SetVal(string(data))

		got, ok := c.Get(t.Context())
		require.True(t, ok)
		assert.Equal(t, products, got)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := ProductsCache{client}

		mock.ExpectGet(productsKey).RedisNil()

		_, ok := c.Get(t.Context())
		assert.False(t, ok)
	})

	t.Run("UnavailableDegradesToMiss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := ProductsCache{client}

		mock.ExpectGet(productsKey).SetErr(assert.AnError)

		_, ok := c.Get(t.Context())
		assert.False(t, ok)
	})

	t.Run("CorruptedEntryDropped", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := ProductsCache{client}

		mock.ExpectGet(productsKey).SetVal("{not json")
		mock.ExpectDel(productsKey).SetVal(1)

		_, ok := c.Get(t.Context())
		assert.False(t, ok)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductsCacheSet(t *testing.T) {

	t.Run("StoresWithoutExpiry", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := ProductsCache{client}

		data, err := json.Marshal(products)
		require.NoError(t, err)
		mock.ExpectSet(productsKey, data, 0).SetVal("OK")

		c.Set(t.Context(), products)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WriteFailureSwallowed", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := ProductsCache{client}

		data, _ := json.Marshal(products)
		mock.ExpectSet(productsKey, data, 0).SetErr(assert.AnError)

		c.Set(t.Context(), products)
	})
}

func TestProductsCacheInvalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := ProductsCache{client}

	mock.ExpectDel(productsKey).SetVal(1)

	c.Invalidate(t.Context())

	require.NoError(t, mock.ExpectationsWereMet())
}
