package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMargin(t *testing.T) {
	t.Run("Standard margin", func(t *testing.T) {
		assert.InDelta(t, 50.0, CalculateMargin(8.0, 12.0), 1e-9)
	})

	t.Run("Zero cost yields zero margin", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateMargin(0, 100))
	})

	t.Run("Negative cost yields zero margin", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateMargin(-5, 100))
	})

	t.Run("Selling below cost is a negative margin", func(t *testing.T) {
		assert.InDelta(t, -50.0, CalculateMargin(10.0, 5.0), 1e-9)
	})
}

func TestParseCategory(t *testing.T) {
	for _, raw := range []string{"vinos", "cervezas", "licores", "whiskey", "vodka", "ron", "otros"} {
		c, err := ParseCategory(raw)
		assert.NoError(t, err)
		assert.Equal(t, Category(raw), c)
	}

	_, err := ParseCategory("gaseosas")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseCategory("")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestIsLowStock(t *testing.T) {
	p := &Product{Stock: 5, MinStock: 10}
	assert.True(t, p.IsLowStock())

	p.Stock = 10
	assert.False(t, p.IsLowStock())
}
