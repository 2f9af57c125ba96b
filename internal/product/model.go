package product

import "time"

// Category is the closed set of catalog categories. Wire values are the
// Spanish names the storefront uses.
type Category string

const (
	CategoryWines   Category = "vinos"
	CategoryBeers   Category = "cervezas"
	CategorySpirits Category = "licores"
	CategoryWhiskey Category = "whiskey"
	CategoryVodka   Category = "vodka"
	CategoryRum     Category = "ron"
	CategoryOther   Category = "otros"
)

var validCategories = map[Category]bool{
	CategoryWines:   true,
	CategoryBeers:   true,
	CategorySpirits: true,
	CategoryWhiskey: true,
	CategoryVodka:   true,
	CategoryRum:     true,
	CategoryOther:   true,
}

// ParseCategory rejects values outside the enum at the boundary.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !validCategories[c] {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CostPrice   float64   `json:"cost_price"`
	SalePrice   float64   `json:"sale_price"`
	Margin      float64   `json:"margin"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	Supplier    *string   `json:"supplier,omitempty"`
	ExpiryDate  *string   `json:"expiry_date,omitempty"`
	Category    Category  `json:"category"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProductInput is the validated shape for create and update.
type NewProductInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	CostPrice   float64  `json:"cost_price"`
	SalePrice   float64  `json:"sale_price"`
	Stock       int      `json:"stock"`
	MinStock    *int     `json:"min_stock,omitempty"`
	Supplier    *string  `json:"supplier,omitempty"`
	ExpiryDate  *string  `json:"expiry_date,omitempty"`
	Category    Category `json:"category"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// CalculateMargin returns the profit margin in percent, zero when the cost
// price carries no information.
func CalculateMargin(costPrice, salePrice float64) float64 {
	if costPrice <= 0 {
		return 0
	}
	return (salePrice - costPrice) / costPrice * 100
}

// IsLowStock reports whether the product sits below its alert threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock < p.MinStock
}
