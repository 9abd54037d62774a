package cart

import (
	"math"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

const (
	// Frais de port fixes dès que le panier n'est pas vide.
	// Pas de paliers ni de calcul au poids : c'est voulu.
	ShippingFlatFee = 10.0

	// TVA appliquée sur le sous-total uniquement, pas sur les frais de port
	TaxRate = 0.10
)

// ComputeTotals dérive les quatre montants du panier. Jamais stocké :
// recalculé à chaque lecture et à chaque changement de quantité.
func ComputeTotals(items []models.CartItem) models.Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	shipping := 0.0
	if subtotal > 0 {
		shipping = ShippingFlatFee
	}

	tax := subtotal * TaxRate

	return models.Totals{
		Subtotal: round2(subtotal),
		Shipping: shipping,
		Tax:      round2(tax),
		Total:    round2(subtotal + shipping + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
