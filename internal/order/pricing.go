package order

import (
	"math"
	"time"

	"tambar-be/internal/customer"
	"tambar-be/internal/product"
	"tambar-be/internal/utils"

	"github.com/google/uuid"
)

// Tax policy. Fixed-rate Bolivian sales taxes applied to the subtotal;
// named here so policy changes never touch the pricing flow.
const (
	TaxRateIVA = 0.13
	TaxRateIT  = 0.03

	// One loyalty point per 10 Bs spent.
	LoyaltyPointUnit = 10.0
)

// StockDecrement is a mutation intent: subtract Quantity from the product's
// stock, conditional on enough stock remaining.
type StockDecrement struct {
	ProductID string
	Quantity  int
}

// CustomerAccrual is a mutation intent: credit the customer's cumulative
// purchase total and loyalty points.
type CustomerAccrual struct {
	CustomerID    string
	Amount        float64
	LoyaltyPoints int
}

// Mutations is everything a committed order changes besides the order row
// itself. The storage layer applies them; pricing never touches state.
type Mutations struct {
	StockDecrements []StockDecrement
	Accrual         CustomerAccrual
}

// CalculateTaxes returns both tax amounts for a subtotal.
func CalculateTaxes(subtotal float64) (iva, it float64) {
	return subtotal * TaxRateIVA, subtotal * TaxRateIT
}

// LoyaltyPoints returns the points earned for an order total.
func LoyaltyPoints(total float64) int {
	return int(math.Floor(total / LoyaltyPointUnit))
}

// PriceOrder validates and prices an order against already-resolved inputs.
// It is pure apart from id and payment-reference generation: callers resolve
// the customer and products, and apply the returned mutations.
//
// The whole order is atomic. Any invalid quantity or unfulfillable line
// rejects the order with no mutations emitted.
func PriceOrder(
	cust *customer.Customer,
	products map[string]*product.Product,
	input NewOrderInput,
) (*Order, *Mutations, error) {

	if len(input.Items) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	items := make([]OrderItem, 0, len(input.Items))
	requested := make(map[string]int, len(input.Items))
	productOrder := make([]string, 0, len(input.Items))
	subtotal := 0.0

	for _, req := range input.Items {
		if req.Quantity <= 0 {
			return nil, nil, ErrInvalidQuantity
		}

		p, ok := products[req.ProductID]
		if !ok {
			return nil, nil, product.ErrProductNotFound
		}

		// Lines naming the same product count against the stock together.
		if _, seen := requested[p.ID]; !seen {
			productOrder = append(productOrder, p.ID)
		}
		requested[p.ID] += req.Quantity
		if requested[p.ID] > p.Stock {
			return nil, nil, &InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Requested:   requested[p.ID],
				Available:   p.Stock,
			}
		}

		lineTotal := p.SalePrice * float64(req.Quantity)
		items = append(items, OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    req.Quantity,
			UnitPrice:   p.SalePrice,
			TotalPrice:  lineTotal,
		})
		subtotal += lineTotal
	}

	// One decrement per product, in first-seen order.
	decrements := make([]StockDecrement, 0, len(productOrder))
	for _, id := range productOrder {
		decrements = append(decrements, StockDecrement{
			ProductID: id,
			Quantity:  requested[id],
		})
	}

	iva, it := CalculateTaxes(subtotal)
	total := subtotal + iva + it + input.DeliveryFee

	qrCode := utils.GeneratePaymentReference(total)

	o := &Order{
		ID:              uuid.New().String(),
		CustomerID:      cust.ID,
		CustomerName:    cust.Name,
		CustomerPhone:   cust.Phone,
		Items:           items,
		Subtotal:        subtotal,
		IVA:             iva,
		IT:              it,
		Total:           total,
		Status:          StatusPending,
		PaymentMethod:   input.PaymentMethod,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryFee:     input.DeliveryFee,
		Notes:           input.Notes,
		QRCode:          &qrCode,
		CreatedAt:       time.Now().UTC(),
	}

	muts := &Mutations{
		StockDecrements: decrements,
		Accrual: CustomerAccrual{
			CustomerID:    cust.ID,
			Amount:        total,
			LoyaltyPoints: LoyaltyPoints(total),
		},
	}

	return o, muts, nil
}
