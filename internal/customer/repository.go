package customer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tambar-be/internal/metrics"

	"github.com/lib/pq"
)

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const customerColumns = `
	id, name, phone, email, address,
	total_purchases, loyalty_points, preferred_products, created_at
`

func scanCustomer(row interface{ Scan(...any) error }) (*Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address,
		&c.TotalPurchases, &c.LoyaltyPoints, pq.Array(&c.PreferredProducts), &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]Customer, error) {
	defer metrics.TrackDBOperation("customer_list")(time.Now())

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}

	return customers, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Customer, error) {
	defer metrics.TrackDBOperation("customer_get")(time.Now())

	row := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id,
	)

	c, err := scanCustomer(row)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}

func (r *repository) Create(ctx context.Context, c *Customer) error {
	defer metrics.TrackDBOperation("customer_create")(time.Now())

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (
			id, name, phone, email, address,
			total_purchases, loyalty_points, preferred_products, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.Name, c.Phone, c.Email, c.Address,
		c.TotalPurchases, c.LoyaltyPoints, pq.Array(c.PreferredProducts), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}
