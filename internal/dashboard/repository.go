package dashboard

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tambar-be/internal/metrics"
	"tambar-be/internal/order"
)

type Repository interface {
	Counts(ctx context.Context) (products, lowStock, orders, pending, customers, messages int, err error)
	Revenue(ctx context.Context, since time.Time) (float64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Counts(ctx context.Context) (products, lowStock, orders, pending, customers, messages int, err error) {
	defer metrics.TrackDBOperation("dashboard_counts")(time.Now())

	err = r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE stock < min_stock),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = $1),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM whatsapp_messages)
	`, order.StatusPending).Scan(&products, &lowStock, &orders, &pending, &customers, &messages)
	if err != nil {
		err = fmt.Errorf("failed to aggregate dashboard counts: %w", err)
	}
	return
}

func (r *repository) Revenue(ctx context.Context, since time.Time) (float64, error) {
	defer metrics.TrackDBOperation("dashboard_revenue")(time.Now())

	var revenue float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= $1 AND status <> $2
	`, since, order.StatusCancelled).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return revenue, nil
}
