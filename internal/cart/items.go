package cart

import "github.com/daxilpatel1309/minimal-cart-grove/internal/models"

// Merge ajoute un item au panier, ou cumule la quantité si le produit
// y figure déjà.
func Merge(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

// SetQuantity fixe la quantité d'une ligne. Une quantité < 1 est ignorée
// silencieusement : la ligne garde sa quantité précédente. Un produit
// absent du panier est un no-op.
func SetQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity < 1 {
		return items
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

// Remove supprime la ligne du produit, quelle que soit sa quantité
func Remove(items []models.CartItem, productID string) []models.CartItem {
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}
