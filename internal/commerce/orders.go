package commerce

import (
	"context"
	"net/http"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

func (c *Client) PlaceOrder(ctx context.Context, token, paymentMethod string) (*models.Order, error) {
	payload := struct {
		PaymentMethod string `json:"payment_method"`
	}{PaymentMethod: paymentMethod}

	var order models.Order
	if err := c.do(ctx, token, http.MethodPost, "/orders", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) FetchOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, token, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) FetchOrder(ctx context.Context, token, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, token, http.MethodGet, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
