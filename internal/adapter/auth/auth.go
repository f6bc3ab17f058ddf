package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

var _ port.PasswordHasher = (*BcryptHasher)(nil)

type BcryptHasher struct {
	cost int
}

func NewHasher() BcryptHasher {
	return BcryptHasher{bcrypt.DefaultCost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	const op = "BcryptHasher.Hash"

	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(b), nil
}

func (h BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ port.TokenProvider = (*JWTProvider)(nil)

type JWTProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTProvider(secret string, ttl time.Duration) JWTProvider {
	return JWTProvider{[]byte(secret), ttl}
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (p JWTProvider) Issue(principal domain.Principal) (string, error) {
	const op = "JWTProvider.Issue"

	now := time.Now()
	c := claims{
		Email: principal.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).
		SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

func (p JWTProvider) Verify(token string) (domain.Principal, error) {
	const op = "JWTProvider.Verify"

	var c claims
	_, err := jwt.ParseWithClaims(
		token, &c,
		func(t *jwt.Token) (any, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Principal{ID: c.Subject, Email: c.Email}, nil
}
