package storage

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niksmo/shop/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepository(t *testing.T) {

	t.Run("CreateUser", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs(userID, "a", "a@x.com", "$2a$10$hash").
			WillReturnRows(
				sqlmock.NewRows([]string{"id", "username", "email"}).
					AddRow(userID, "a", "a@x.com"),
			)

		r := NewUsersRepository(db)
		u, err := r.CreateUser(t.Context(), domain.User{
			ID: userID, Username: "a", Email: "a@x.com",
			PasswordHash: "$2a$10$hash",
		})
		require.NoError(t, err)

		assert.Equal(t, "a", u.Username)
		assert.Empty(t, u.PasswordHash, "hash never read back on insert")
	})

	t.Run("CreateUserEmailTaken", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		r := NewUsersRepository(db)
		_, err = r.CreateUser(t.Context(), domain.User{
			ID: userID, Username: "a", Email: "a@x.com",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("FindUserByEmailNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
			WithArgs("nobody@x.com").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "username", "email", "password"},
			))

		r := NewUsersRepository(db)
		_, err = r.FindUserByEmail(t.Context(), "nobody@x.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("AddWishlistIdempotent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// second insert conflicts and affects zero rows, still no error
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wishlists`)).
			WithArgs(userID, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wishlists`)).
			WithArgs(userID, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		r := NewUsersRepository(db)
		require.NoError(t, r.AddWishlist(t.Context(), userID, productID))
		require.NoError(t, r.AddWishlist(t.Context(), userID, productID))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WishlistJoinsProductDetail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"product_id", "p_id", "p_name", "p_stock", "p_price",
		}).AddRow(productID, productID, "Widget", 10, int64(500))

		mock.ExpectQuery(regexp.QuoteMeta(`FROM wishlists w`)).
			WithArgs(userID).
			WillReturnRows(rows)

		r := NewUsersRepository(db)
		ws, err := r.Wishlist(t.Context(), userID)
		require.NoError(t, err)
		require.Len(t, ws, 1)
		require.NotNil(t, ws[0].Product)
		assert.Equal(t, "Widget", ws[0].Product.Name)
	})
}

func TestIsTxConflict(t *testing.T) {
	assert.True(t, IsTxConflict(
		&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.True(t, IsTxConflict(
		&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.False(t, IsTxConflict(
		&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, IsTxConflict(assert.AnError))
}
