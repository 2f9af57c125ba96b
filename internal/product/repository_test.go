package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{
	"id", "name", "description", "cost_price", "sale_price", "margin",
	"stock", "min_stock", "supplier", "expiry_date", "category", "image_url", "created_at",
}

func productRow(id, name string, stock int) *sqlmock.Rows {
	return sqlmock.NewRows(productCols).AddRow(
		id, name, nil, 3.50, 6.00, 71.43,
		stock, 10, nil, nil, "cervezas", nil, time.Now(),
	)
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* FROM products WHERE id = \$1`).
			WithArgs("p1").
			WillReturnRows(productRow("p1", "Cerveza Pilsener 330ml", 48))

		p, err := repo.GetByID(ctx, "p1")
		assert.NoError(t, err)
		assert.Equal(t, "Cerveza Pilsener 330ml", p.Name)
		assert.Equal(t, 48, p.Stock)
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* FROM products WHERE id = \$1`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(productCols))

		_, err = repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_FindByName(t *testing.T) {
	ctx := context.Background()

	t.Run("Case-insensitive substring match", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* FROM products\s+WHERE name ILIKE`).
			WithArgs("pilsener").
			WillReturnRows(productRow("p1", "Cerveza Pilsener 330ml", 48))

		p, err := repo.FindByName(ctx, "pilsener")
		assert.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
	})

	t.Run("No match", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* FROM products\s+WHERE name ILIKE`).
			WithArgs("tequila").
			WillReturnRows(sqlmock.NewRows(productCols))

		_, err = repo.FindByName(ctx, "tequila")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := productRow("p1", "Cerveza Pilsener 330ml", 48).AddRow(
			"p2", "Vino Kohlberg Tinto", nil, 45.0, 75.0, 66.67,
			12, 5, nil, nil, "vinos", nil, time.Now(),
		)
		mock.ExpectQuery(`(?s)SELECT .* FROM products ORDER BY created_at DESC`).
			WillReturnRows(rows)

		products, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .*`).WillReturnError(errors.New("db error"))
		_, err = repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero rows means missing product", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE products SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Update(ctx, &Product{ID: "ghost", Category: CategoryBeers})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_LowStock(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`(?s)SELECT .* FROM products WHERE stock < min_stock`).
		WillReturnRows(productRow("p3", "Singani Casa Real", 8))

	products, err := repo.LowStock(ctx)
	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Singani Casa Real", products[0].Name)
}
