package models

type Review struct {
	ID         string `json:"_id"`
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"` // 1-5
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
}
