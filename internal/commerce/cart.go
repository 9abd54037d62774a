package commerce

import (
	"context"
	"net/http"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

type quantityPayload struct {
	Quantity int `json:"quantity"`
}

func (c *Client) FetchCart(ctx context.Context, token string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.do(ctx, token, http.MethodGet, "/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddToCart(ctx context.Context, token, productID string, quantity int) error {
	return c.do(ctx, token, http.MethodPost, "/cart/"+productID, quantityPayload{Quantity: quantity}, nil)
}

func (c *Client) UpdateCartQuantity(ctx context.Context, token, productID string, quantity int) error {
	return c.do(ctx, token, http.MethodPut, "/cart/"+productID, quantityPayload{Quantity: quantity}, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, token, productID string) error {
	return c.do(ctx, token, http.MethodDelete, "/cart/"+productID, nil, nil)
}
