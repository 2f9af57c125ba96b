package product

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tambar-be/internal/metrics"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	FindByName(ctx context.Context, fragment string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	LowStock(ctx context.Context) ([]Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, name, description, cost_price, sale_price, margin,
	stock, min_stock, supplier, expiry_date, category, image_url, created_at
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CostPrice, &p.SalePrice, &p.Margin,
		&p.Stock, &p.MinStock, &p.Supplier, &p.ExpiryDate, &p.Category, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	defer metrics.TrackDBOperation("product_list")(time.Now())

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	defer metrics.TrackDBOperation("product_get")(time.Now())

	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id,
	)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

func (r *repository) FindByName(ctx context.Context, fragment string) (*Product, error) {
	defer metrics.TrackDBOperation("product_find_by_name")(time.Now())

	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY created_at
		 LIMIT 1`,
		fragment,
	)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product by name: %w", err)
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	defer metrics.TrackDBOperation("product_create")(time.Now())

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (
			id, name, description, cost_price, sale_price, margin,
			stock, min_stock, supplier, expiry_date, category, image_url, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.Name, p.Description, p.CostPrice, p.SalePrice, p.Margin,
		p.Stock, p.MinStock, p.Supplier, p.ExpiryDate, p.Category, p.ImageURL, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	metrics.SetProductStock(p.ID, string(p.Category), p.Stock)
	return nil
}

func (r *repository) Update(ctx context.Context, p *Product) error {
	defer metrics.TrackDBOperation("product_update")(time.Now())

	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET
			name = $2, description = $3, cost_price = $4, sale_price = $5,
			margin = $6, stock = $7, min_stock = $8, supplier = $9,
			expiry_date = $10, category = $11, image_url = $12
		 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.CostPrice, p.SalePrice,
		p.Margin, p.Stock, p.MinStock, p.Supplier,
		p.ExpiryDate, p.Category, p.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	metrics.SetProductStock(p.ID, string(p.Category), p.Stock)
	return nil
}

func (r *repository) LowStock(ctx context.Context) ([]Product, error) {
	defer metrics.TrackDBOperation("product_low_stock")(time.Now())

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE stock < min_stock ORDER BY stock`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}
