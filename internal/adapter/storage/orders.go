package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
)

var _ port.OrdersRepository = (*OrdersRepository)(nil)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

// PlaceOrder inserts the order and decrements the product stock in one
// transaction. The product row is locked for the duration, so two racing
// orders for the same product serialize on the store; the decrement is
// additionally conditional on remaining stock, so it can never commit a
// negative value.
func (r OrdersRepository) PlaceOrder(
	ctx context.Context, userID, productID string, quantity int,
) (o domain.Order, placeErr error) {
	const op = "OrdersRepository.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if placeErr == nil {
			if err := tx.Commit(); err != nil {
				o = domain.Order{}
				placeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	p, err := r.lockProduct(ctx, tx, productID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.Stock < quantity {
		return domain.Order{}, fmt.Errorf(
			"%s: %w", op, domain.ErrInsufficientStock,
		)
	}

	o, err = r.insertOrder(ctx, tx, userID, p, quantity)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.decrementStock(ctx, tx, productID, quantity); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return o, nil
}

func (r OrdersRepository) lockProduct(
	ctx context.Context, tx *sql.Tx, productID string,
) (domain.Product, error) {
	query := `
		SELECT id, name, stock, price
		FROM products WHERE id = $1 FOR UPDATE;`

	var p domain.Product
	err := tx.QueryRowContext(ctx, query, productID).Scan(
		&p.ID, &p.Name, &p.Stock, &p.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (r OrdersRepository) insertOrder(
	ctx context.Context, tx *sql.Tx,
	userID string, p domain.Product, quantity int,
) (domain.Order, error) {
	query := `
		INSERT INTO orders (product_id, user_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`

	o := domain.Order{
		ProductID: p.ID,
		UserID:    userID,
		Quantity:  quantity,
		Price:     p.Price * int64(quantity),
	}

	err := tx.QueryRowContext(
		ctx, query, o.ProductID, o.UserID, o.Quantity, o.Price,
	).Scan(&o.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r OrdersRepository) decrementStock(
	ctx context.Context, tx *sql.Tx, productID string, quantity int,
) error {
	query := `
		UPDATE products SET stock = stock - $2
		WHERE id = $1 AND stock >= $2;`

	res, err := tx.ExecContext(ctx, query, productID, quantity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r OrdersRepository) ListOrders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "OrdersRepository.ListOrders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT o.id, o.product_id, o.user_id, o.quantity, o.price,
			p.id, p.name, p.stock, p.price
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.user_id = $1
		ORDER BY o.created_at ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var os []domain.Order
	for rows.Next() {
		var o domain.Order
		var pID, pName sql.NullString
		var pStock sql.NullInt64
		var pPrice sql.NullInt64
		err := rows.Scan(
			&o.ID, &o.ProductID, &o.UserID, &o.Quantity, &o.Price,
			&pID, &pName, &pStock, &pPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if pID.Valid {
			o.Product = &domain.Product{
				ID:    pID.String,
				Name:  pName.String,
				Stock: int(pStock.Int64),
				Price: pPrice.Int64,
			}
		}
		os = append(os, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return os, nil
}
