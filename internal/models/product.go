package models

type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	SellerID    string   `json:"seller_id"`
	CategoryID  string   `json:"category_id"`
	Images      []string `json:"images"`
	RatingAvg   float64  `json:"rating_avg"`
	Status      string   `json:"status"`
}
