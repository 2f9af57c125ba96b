package order

import (
	"testing"

	"tambar-be/internal/customer"
	"tambar-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer() *customer.Customer {
	return &customer.Customer{
		ID:    "c1",
		Name:  "Carlos Mendoza",
		Phone: "70123456",
	}
}

func testProducts() map[string]*product.Product {
	return map[string]*product.Product{
		"p1": {
			ID:        "p1",
			Name:      "Cerveza Corona Extra",
			CostPrice: 8.0,
			SalePrice: 12.0,
			Stock:     50,
			Category:  product.CategoryBeers,
		},
		"p2": {
			ID:        "p2",
			Name:      "Vino Kohlberg Tinto",
			CostPrice: 45.0,
			SalePrice: 75.0,
			Stock:     12,
			Category:  product.CategoryWines,
		},
	}
}

func TestPriceOrder_WorkedExample(t *testing.T) {
	// cost 8, sale 12, 6 units of 50 in stock: subtotal 72,
	// iva 9.36, it 2.16, total 83.52, 8 loyalty points.
	o, muts, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{
		CustomerID: "c1",
		Items:      []ItemRequest{{ProductID: "p1", Quantity: 6}},
	})
	require.NoError(t, err)

	assert.InDelta(t, 72.0, o.Subtotal, 1e-9)
	assert.InDelta(t, 9.36, o.IVA, 1e-9)
	assert.InDelta(t, 2.16, o.IT, 1e-9)
	assert.InDelta(t, 83.52, o.Total, 1e-9)
	assert.Equal(t, StatusPending, o.Status)

	require.Len(t, o.Items, 1)
	assert.Equal(t, "Cerveza Corona Extra", o.Items[0].ProductName)
	assert.InDelta(t, 12.0, o.Items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 72.0, o.Items[0].TotalPrice, 1e-9)

	require.Len(t, muts.StockDecrements, 1)
	assert.Equal(t, StockDecrement{ProductID: "p1", Quantity: 6}, muts.StockDecrements[0])
	assert.Equal(t, "c1", muts.Accrual.CustomerID)
	assert.InDelta(t, 83.52, muts.Accrual.Amount, 1e-9)
	assert.Equal(t, 8, muts.Accrual.LoyaltyPoints)

	require.NotNil(t, o.QRCode)
	assert.Regexp(t, `^qr_payment_[0-9a-f]{8}_83$`, *o.QRCode)
}

func TestPriceOrder_TotalInvariant(t *testing.T) {
	o, _, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{
		CustomerID:  "c1",
		DeliveryFee: 15.0,
		Items: []ItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 99.0, o.Subtotal, 1e-9)
	assert.InDelta(t, o.Subtotal+o.IVA+o.IT+o.DeliveryFee, o.Total, 1e-9)
	assert.InDelta(t, o.Subtotal*TaxRateIVA, o.IVA, 1e-9)
	assert.InDelta(t, o.Subtotal*TaxRateIT, o.IT, 1e-9)
}

func TestPriceOrder_Snapshots(t *testing.T) {
	products := testProducts()
	o, _, err := PriceOrder(testCustomer(), products, NewOrderInput{
		CustomerID: "c1",
		Items:      []ItemRequest{{ProductID: "p2", Quantity: 1}},
	})
	require.NoError(t, err)

	// order carries copies, not references to the live catalog
	products["p2"].SalePrice = 999
	products["p2"].Name = "changed"

	assert.Equal(t, "Vino Kohlberg Tinto", o.Items[0].ProductName)
	assert.InDelta(t, 75.0, o.Items[0].UnitPrice, 1e-9)
	assert.Equal(t, "Carlos Mendoza", o.CustomerName)
	assert.Equal(t, "70123456", o.CustomerPhone)
}

func TestPriceOrder_Rejections(t *testing.T) {
	t.Run("Empty order", func(t *testing.T) {
		_, _, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{CustomerID: "c1"})
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		_, _, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{
			CustomerID: "c1",
			Items:      []ItemRequest{{ProductID: "p1", Quantity: 0}},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Negative quantity", func(t *testing.T) {
		_, _, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{
			CustomerID: "c1",
			Items:      []ItemRequest{{ProductID: "p1", Quantity: -3}},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		_, _, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{
			CustomerID: "c1",
			Items:      []ItemRequest{{ProductID: "ghost", Quantity: 1}},
		})
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("Insufficient stock fails whole order with no mutations", func(t *testing.T) {
		o, muts, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{
			CustomerID: "c1",
			Items: []ItemRequest{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p2", Quantity: 13}, // only 12 available
			},
		})
		assert.Nil(t, o)
		assert.Nil(t, muts)
		assert.ErrorIs(t, err, ErrInsufficientStock)

		var stockErr *InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "p2", stockErr.ProductID)
		assert.Equal(t, 13, stockErr.Requested)
		assert.Equal(t, 12, stockErr.Available)
	})
}

func TestPriceOrder_DuplicateProductLines(t *testing.T) {
	t.Run("Combined quantity over stock rejected", func(t *testing.T) {
		// p1 has 50 in stock; 30+30 must fail here, not at the storage layer.
		_, muts, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{
			CustomerID: "c1",
			Items: []ItemRequest{
				{ProductID: "p1", Quantity: 30},
				{ProductID: "p1", Quantity: 30},
			},
		})

		var stockErr *InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 60, stockErr.Requested)
		assert.Equal(t, 50, stockErr.Available)
		assert.Nil(t, muts)
	})

	t.Run("Combined quantity within stock decrements once", func(t *testing.T) {
		o, muts, err := PriceOrder(testCustomer(), testProducts(), NewOrderInput{
			CustomerID: "c1",
			Items: []ItemRequest{
				{ProductID: "p1", Quantity: 20},
				{ProductID: "p2", Quantity: 2},
				{ProductID: "p1", Quantity: 20},
			},
		})
		require.NoError(t, err)

		// Lines stay separate on the order, decrements merge per product.
		require.Len(t, o.Items, 3)
		require.Len(t, muts.StockDecrements, 2)
		assert.Equal(t, StockDecrement{ProductID: "p1", Quantity: 40}, muts.StockDecrements[0])
		assert.Equal(t, StockDecrement{ProductID: "p2", Quantity: 2}, muts.StockDecrements[1])
	})
}

func TestLoyaltyPoints(t *testing.T) {
	assert.Equal(t, 8, LoyaltyPoints(83.52))
	assert.Equal(t, 0, LoyaltyPoints(9.99))
	assert.Equal(t, 1, LoyaltyPoints(10.0))
	assert.Equal(t, 0, LoyaltyPoints(0))
}
