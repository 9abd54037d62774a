package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

func TestComputeTotals(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		totals := ComputeTotals(nil)
		assert.Equal(t, models.Totals{}, totals)
	})

	t.Run("SingleLine", func(t *testing.T) {
		items := []models.CartItem{
			{ProductID: "p1", Price: 10, Quantity: 2},
		}

		totals := ComputeTotals(items)
		assert.Equal(t, 20.0, totals.Subtotal)
		assert.Equal(t, 10.0, totals.Shipping)
		assert.Equal(t, 2.0, totals.Tax)
		assert.Equal(t, 32.0, totals.Total)
	})

	t.Run("MultipleLines", func(t *testing.T) {
		items := []models.CartItem{
			{ProductID: "p1", Price: 19.99, Quantity: 1},
			{ProductID: "p2", Price: 5.50, Quantity: 3},
		}

		totals := ComputeTotals(items)
		assert.Equal(t, 36.49, totals.Subtotal)
		assert.Equal(t, 10.0, totals.Shipping)
		assert.Equal(t, 3.65, totals.Tax)
		assert.Equal(t, 50.14, totals.Total)
	})

	t.Run("ShippingIsFlatRegardlessOfMagnitude", func(t *testing.T) {
		small := ComputeTotals([]models.CartItem{{Price: 0.01, Quantity: 1}})
		big := ComputeTotals([]models.CartItem{{Price: 9999, Quantity: 10}})

		assert.Equal(t, ShippingFlatFee, small.Shipping)
		assert.Equal(t, ShippingFlatFee, big.Shipping)
	})

	t.Run("TaxOnSubtotalNotShipping", func(t *testing.T) {
		items := []models.CartItem{{Price: 100, Quantity: 1}}

		totals := ComputeTotals(items)
		// 10% de 100, pas de 110
		assert.Equal(t, 10.0, totals.Tax)
	})
}
