package service_test

import (
	"context"

	"github.com/niksmo/shop/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductsRepository struct {
	mock.Mock
}

func (m *MockProductsRepository) ListProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductsRepository) FindProduct(
	ctx context.Context, productID string,
) (domain.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsRepository) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsRepository) UpdateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsRepository) DeleteProduct(
	ctx context.Context, productID string,
) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type MockOrdersRepository struct {
	mock.Mock
}

func (m *MockOrdersRepository) PlaceOrder(
	ctx context.Context, userID, productID string, quantity int,
) (domain.Order, error) {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrdersRepository) ListOrders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

type MockUsersRepository struct {
	mock.Mock
}

func (m *MockUsersRepository) CreateUser(
	ctx context.Context, u domain.User,
) (domain.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUsersRepository) FindUserByEmail(
	ctx context.Context, email string,
) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUsersRepository) FindUser(
	ctx context.Context, userID string,
) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUsersRepository) AddWishlist(
	ctx context.Context, userID, productID string,
) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockUsersRepository) Wishlist(
	ctx context.Context, userID string,
) ([]domain.WishlistEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.WishlistEntry), args.Error(1)
}

type MockProductsCache struct {
	mock.Mock
}

func (m *MockProductsCache) Get(ctx context.Context) ([]domain.Product, bool) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Bool(1)
}

func (m *MockProductsCache) Set(ctx context.Context, ps []domain.Product) {
	m.Called(ctx, ps)
}

func (m *MockProductsCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

type MockTokenProvider struct {
	mock.Mock
}

func (m *MockTokenProvider) Issue(p domain.Principal) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

func (m *MockTokenProvider) Verify(token string) (domain.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Principal), args.Error(1)
}
