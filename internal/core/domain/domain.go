package domain

import "errors"

// Failure kinds the services return. Callers branch with errors.Is;
// everything else is treated as a store failure.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAuthentication    = errors.New("authentication failed")
	ErrValidation        = errors.New("invalid input")
	ErrEmailTaken        = errors.New("email already registered")
)

type (
	Product struct {
		ID    string
		Name  string
		Stock int
		Price int64
	}

	Order struct {
		ID        string
		ProductID string
		UserID    string
		Quantity  int
		Price     int64
		Product   *Product
	}

	User struct {
		ID           string
		Username     string
		Email        string
		PasswordHash string
	}

	WishlistEntry struct {
		ProductID string
		Product   *Product
	}
)

// Principal is the verified identity resolved from a request credential.
type Principal struct {
	ID    string
	Email string
}
