package commerce

import (
	"context"
	"net/http"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

func (c *Client) FetchReviews(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.do(ctx, "", http.MethodGet, "/reviews/"+productID, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, token, productID string, rating int, comment string) (*models.Review, error) {
	payload := struct {
		ProductID string `json:"product_id"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}{ProductID: productID, Rating: rating, Comment: comment}

	var review models.Review
	if err := c.do(ctx, token, http.MethodPost, "/reviews", payload, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
