package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Counts(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`(?s)SELECT\s+\(SELECT COUNT\(\*\) FROM products\)`).
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e", "f"}).
			AddRow(8, 3, 20, 5, 4, 12))

	products, lowStock, orders, pending, customers, messages, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, products)
	assert.Equal(t, 3, lowStock)
	assert.Equal(t, 20, orders)
	assert.Equal(t, 5, pending)
	assert.Equal(t, 4, customers)
	assert.Equal(t, 12, messages)
}

func TestRepository_Revenue(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	since := time.Now()
	mock.ExpectQuery(`(?s)SELECT COALESCE\(SUM\(total\), 0\)\s+FROM orders`).
		WithArgs(since, "cancelado").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(250.5))

	revenue, err := repo.Revenue(ctx, since)
	require.NoError(t, err)
	assert.InDelta(t, 250.5, revenue, 1e-9)
}
