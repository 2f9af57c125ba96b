package customer

import "time"

type Customer struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             *string   `json:"email,omitempty"`
	Address           *string   `json:"address,omitempty"`
	TotalPurchases    float64   `json:"total_purchases"`
	LoyaltyPoints     int       `json:"loyalty_points"`
	PreferredProducts []string  `json:"preferred_products"`
	CreatedAt         time.Time `json:"created_at"`
}

type NewCustomerInput struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}
