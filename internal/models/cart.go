package models

type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // prix au moment de l'ajout, peut diverger du catalogue
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// Totals est dérivé du panier à chaque lecture, jamais stocké
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
