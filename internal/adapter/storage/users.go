package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
)

var _ port.UsersRepository = (*UsersRepository)(nil)

type UsersRepository struct {
	sqldb sqldb
}

func NewUsersRepository(sqldb sqldb) UsersRepository {
	return UsersRepository{sqldb}
}

func (r UsersRepository) CreateUser(
	ctx context.Context, u domain.User,
) (domain.User, error) {
	const op = "UsersRepository.CreateUser"

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO users (id, username, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email;`

	var created domain.User
	err := r.sqldb.QueryRowContext(
		ctx, query, u.ID, u.Username, u.Email, u.PasswordHash,
	).Scan(&created.ID, &created.Username, &created.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrEmailTaken)
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (r UsersRepository) FindUserByEmail(
	ctx context.Context, email string,
) (domain.User, error) {
	const op = "UsersRepository.FindUserByEmail"

	u, err := r.findUser(ctx, `WHERE email = $1`, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (r UsersRepository) FindUser(
	ctx context.Context, userID string,
) (domain.User, error) {
	const op = "UsersRepository.FindUser"

	u, err := r.findUser(ctx, `WHERE id = $1`, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (r UsersRepository) findUser(
	ctx context.Context, filter string, arg any,
) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	query := `SELECT id, username, email, password FROM users ` + filter + `;`

	var u domain.User
	err := r.sqldb.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// AddWishlist is idempotent: adding a product twice keeps a single entry.
func (r UsersRepository) AddWishlist(
	ctx context.Context, userID, productID string,
) error {
	const op = "UsersRepository.AddWishlist"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO wishlists (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING;`

	_, err := r.sqldb.ExecContext(ctx, query, userID, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r UsersRepository) Wishlist(
	ctx context.Context, userID string,
) ([]domain.WishlistEntry, error) {
	const op = "UsersRepository.Wishlist"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT w.product_id, p.id, p.name, p.stock, p.price
		FROM wishlists w
		LEFT JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ws []domain.WishlistEntry
	for rows.Next() {
		var w domain.WishlistEntry
		var pID, pName sql.NullString
		var pStock, pPrice sql.NullInt64
		err := rows.Scan(&w.ProductID, &pID, &pName, &pStock, &pPrice)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if pID.Valid {
			w.Product = &domain.Product{
				ID:    pID.String,
				Name:  pName.String,
				Stock: int(pStock.Int64),
				Price: pPrice.Int64,
			}
		}
		ws = append(ws, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ws, nil
}
