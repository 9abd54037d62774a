package models

type Order struct {
	ID            string     `json:"_id"`
	CustomerID    string     `json:"customer_id"`
	Items         []CartItem `json:"items"`
	TotalPrice    float64    `json:"total_price"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	CreatedAt     string     `json:"created_at"`
}
