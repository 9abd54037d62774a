package commerce

import (
	"context"
	"net/http"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

func (c *Client) FetchWishlist(ctx context.Context, token string) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, token, http.MethodGet, "/wishlist", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) AddToWishlist(ctx context.Context, token, productID string) error {
	return c.do(ctx, token, http.MethodPost, "/wishlist/"+productID, nil, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	return c.do(ctx, token, http.MethodDelete, "/wishlist/"+productID, nil, nil)
}
