package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
)

var _ port.UserRegistrar = (*UserService)(nil)
var _ port.WishlistKeeper = (*UserService)(nil)
var _ port.PrincipalResolver = (*UserService)(nil)

type UserService struct {
	users    port.UsersRepository
	products port.ProductsRepository
	hasher   port.PasswordHasher
	tokens   port.TokenProvider
}

func NewUsers(
	users port.UsersRepository,
	products port.ProductsRepository,
	hasher port.PasswordHasher,
	tokens port.TokenProvider,
) UserService {
	return UserService{users, products, hasher, tokens}
}

func (s UserService) Register(
	ctx context.Context, username, email, password string,
) (domain.User, error) {
	const op = "UserService.Register"

	if err := validateRegistration(username, email, password); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	u, err = s.users.CreateUser(ctx, u)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	u.PasswordHash = ""
	return u, nil
}

func (s UserService) Login(
	ctx context.Context, email, password string,
) (string, error) {
	const op = "UserService.Login"

	u, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, domain.ErrAuthentication)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !s.hasher.Compare(u.PasswordHash, password) {
		return "", fmt.Errorf("%s: %w", op, domain.ErrAuthentication)
	}

	token, err := s.tokens.Issue(domain.Principal{ID: u.ID, Email: u.Email})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ResolvePrincipal verifies the bearer credential and confirms the subject
// still exists. Principals are resolved per request, never cached.
func (s UserService) ResolvePrincipal(
	ctx context.Context, credential string,
) (domain.Principal, error) {
	const op = "UserService.ResolvePrincipal"

	p, err := s.tokens.Verify(credential)
	if err != nil {
		return domain.Principal{}, fmt.Errorf(
			"%s: %w", op, domain.ErrAuthentication,
		)
	}

	u, err := s.users.FindUser(ctx, p.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, fmt.Errorf(
				"%s: %w", op, domain.ErrAuthentication,
			)
		}
		return domain.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Principal{ID: u.ID, Email: u.Email}, nil
}

func (s UserService) AddWishlist(
	ctx context.Context, userID, productID string,
) ([]domain.WishlistEntry, error) {
	const op = "UserService.AddWishlist"

	if _, err := s.products.FindProduct(ctx, productID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.users.AddWishlist(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ws, err := s.users.Wishlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ws, nil
}

func (s UserService) GetWishlist(
	ctx context.Context, userID string,
) ([]domain.WishlistEntry, error) {
	const op = "UserService.GetWishlist"

	ws, err := s.users.Wishlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ws, nil
}

func validateRegistration(username, email, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: malformed email", domain.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	return nil
}
