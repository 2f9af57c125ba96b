package order

import "time"

// OrderStatus wire values are the Spanish names the storefront and the
// frontend already exchange.
type OrderStatus string

const (
	StatusPending       OrderStatus = "pendiente"
	StatusConfirmed     OrderStatus = "confirmado"
	StatusInPreparation OrderStatus = "en_preparacion"
	StatusInDelivery    OrderStatus = "en_entrega"
	StatusDelivered     OrderStatus = "entregado"
	StatusCancelled     OrderStatus = "cancelado"
)

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "efectivo"
	PaymentQR        PaymentMethod = "qr"
	PaymentTigoMoney PaymentMethod = "tigo_money"
	PaymentBank      PaymentMethod = "banco"
	PaymentCard      PaymentMethod = "tarjeta"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PaymentCash:      true,
	PaymentQR:        true,
	PaymentTigoMoney: true,
	PaymentBank:      true,
	PaymentCard:      true,
}

// ParsePaymentMethod rejects values outside the enum at the boundary.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(raw)
	if !validPaymentMethods[m] {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}

// OrderItem snapshots the product name and unit price at checkout time.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type Order struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id"`
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	Items           []OrderItem    `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	IVA             float64        `json:"iva"`
	IT              float64        `json:"it"`
	Total           float64        `json:"total"`
	Status          OrderStatus    `json:"status"`
	PaymentMethod   *PaymentMethod `json:"payment_method,omitempty"`
	DeliveryAddress *string        `json:"delivery_address,omitempty"`
	DeliveryFee     float64        `json:"delivery_fee"`
	Notes           *string        `json:"notes,omitempty"`
	QRCode          *string        `json:"qr_code,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	DeliveredAt     *time.Time     `json:"delivered_at,omitempty"`
}

// ItemRequest is one requested line of a new order.
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type NewOrderInput struct {
	CustomerID      string         `json:"customer_id"`
	Items           []ItemRequest  `json:"items"`
	DeliveryAddress *string        `json:"delivery_address,omitempty"`
	DeliveryFee     float64        `json:"delivery_fee"`
	PaymentMethod   *PaymentMethod `json:"payment_method,omitempty"`
	Notes           *string        `json:"notes,omitempty"`
}
