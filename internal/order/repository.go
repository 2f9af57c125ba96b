package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tambar-be/internal/customer"
	"tambar-be/internal/metrics"

	"github.com/lib/pq"
)

type Repository interface {
	// CreateOrderTx persists the order and applies its mutations in one
	// transaction. Stock decrements are conditional: the transaction aborts
	// with InsufficientStockError when a product ran out concurrently, which
	// keeps all-or-nothing semantics under racing orders.
	CreateOrderTx(ctx context.Context, o *Order, muts *Mutations) error

	List(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus, deliveredAt *time.Time) error

	// SalesSince returns the count and revenue of non-cancelled orders
	// created at or after the given time.
	SalesSince(ctx context.Context, since time.Time) (int, float64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrderTx(ctx context.Context, o *Order, muts *Mutations) error {
	defer metrics.TrackDBOperation("create_order")(time.Now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Conditional stock decrements. Zero rows affected means another
	// order won the stock between pricing and commit.
	for _, dec := range muts.StockDecrements {
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, dec.Quantity, dec.ProductID)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check stock decrement: %w", err)
		}
		if affected == 0 {
			var name string
			var available int
			err := tx.QueryRowContext(ctx,
				`SELECT name, stock FROM products WHERE id = $1`, dec.ProductID,
			).Scan(&name, &available)
			if err != nil {
				return fmt.Errorf("failed to resolve conflicting product: %w", err)
			}
			return &InsufficientStockError{
				ProductID:   dec.ProductID,
				ProductName: name,
				Requested:   dec.Quantity,
				Available:   available,
			}
		}
	}

	// 2. Insert order
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, customer_id, customer_name, customer_phone,
			subtotal, iva, it, total, status,
			payment_method, delivery_address, delivery_fee,
			notes, qr_code, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone,
		o.Subtotal, o.IVA, o.IT, o.Total, o.Status,
		o.PaymentMethod, o.DeliveryAddress, o.DeliveryFee,
		o.Notes, o.QRCode, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	// 3. Insert order items
	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, product_name,
				quantity, unit_price, total_price
			) VALUES ($1,$2,$3,$4,$5,$6)
		`,
			o.ID, item.ProductID, item.ProductName,
			item.Quantity, item.UnitPrice, item.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	// 4. Customer accrual
	res, err := tx.ExecContext(ctx, `
		UPDATE customers
		SET total_purchases = total_purchases + $1,
		    loyalty_points = loyalty_points + $2
		WHERE id = $3
	`, muts.Accrual.Amount, muts.Accrual.LoyaltyPoints, muts.Accrual.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to apply customer accrual: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check customer accrual: %w", err)
	}
	if affected == 0 {
		return customer.ErrCustomerNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

const orderColumns = `
	id, customer_id, customer_name, customer_phone,
	subtotal, iva, it, total, status,
	payment_method, delivery_address, delivery_fee,
	notes, qr_code, created_at, delivered_at
`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerPhone,
		&o.Subtotal, &o.IVA, &o.IT, &o.Total, &o.Status,
		&o.PaymentMethod, &o.DeliveryAddress, &o.DeliveryFee,
		&o.Notes, &o.QRCode, &o.CreatedAt, &o.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) List(ctx context.Context) ([]*Order, error) {
	defer metrics.TrackDBOperation("order_list")(time.Now())

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*Order
	ids := make([]string, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = itemsByOrder[o.ID]
	}

	return orders, nil
}

// fetchItems returns each order's items in insertion order, via the serial
// id column on order_items.
func (r *repository) fetchItems(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, product_id, product_name, quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]OrderItem)
	for rows.Next() {
		var orderID string
		var item OrderItem
		if err := rows.Scan(
			&orderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items[orderID] = append(items[orderID], item)
	}

	return items, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	defer metrics.TrackDBOperation("order_get")(time.Now())

	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	itemsByOrder, err := r.fetchItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]

	return o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status OrderStatus, deliveredAt *time.Time) error {
	defer metrics.TrackDBOperation("order_update_status")(time.Now())

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $2, delivered_at = COALESCE($3, delivered_at)
		WHERE id = $1
	`, id, status, deliveredAt)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check status update: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) SalesSince(ctx context.Context, since time.Time) (int, float64, error) {
	defer metrics.TrackDBOperation("order_sales_since")(time.Now())

	var count int
	var revenue float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= $1 AND status <> $2
	`, since, StatusCancelled).Scan(&count, &revenue)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	return count, revenue, nil
}
