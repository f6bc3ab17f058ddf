package port

import (
	"context"

	"github.com/niksmo/shop/internal/core/domain"
)

// Inbound ports implemented by the core services.

type CatalogReader interface {
	ListProducts(context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
}

type CatalogWriter interface {
	CreateProduct(ctx context.Context, name string, stock int, price int64) (domain.Product, error)
	UpdateProduct(ctx context.Context, productID, name string, stock int, price int64) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID, productID string, quantity int) (domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

type UserRegistrar interface {
	Register(ctx context.Context, username, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type WishlistKeeper interface {
	AddWishlist(ctx context.Context, userID, productID string) ([]domain.WishlistEntry, error)
	GetWishlist(ctx context.Context, userID string) ([]domain.WishlistEntry, error)
}

type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, credential string) (domain.Principal, error)
}

// Outbound ports implemented by the adapters.

type ProductsRepository interface {
	ListProducts(context.Context) ([]domain.Product, error)
	FindProduct(ctx context.Context, productID string) (domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type OrdersRepository interface {
	// PlaceOrder runs the read-check-insert-decrement sequence in one
	// transaction and returns the committed order.
	PlaceOrder(ctx context.Context, userID, productID string, quantity int) (domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

type UsersRepository interface {
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)
	FindUser(ctx context.Context, userID string) (domain.User, error)
	AddWishlist(ctx context.Context, userID, productID string) error
	Wishlist(ctx context.Context, userID string) ([]domain.WishlistEntry, error)
}

type ProductsCache interface {
	Get(context.Context) ([]domain.Product, bool)
	Set(context.Context, []domain.Product)
	Invalidate(context.Context)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type TokenProvider interface {
	Issue(p domain.Principal) (string, error)
	Verify(token string) (domain.Principal, error)
}
