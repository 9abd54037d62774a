package commerce

import (
	"context"
	"net/http"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthPayload, error) {
	var payload models.AuthPayload
	if err := c.do(ctx, "", http.MethodPost, "/auth/login", creds, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) Signup(ctx context.Context, data models.SignupData) (*models.AuthPayload, error) {
	var payload models.AuthPayload
	if err := c.do(ctx, "", http.MethodPost, "/auth/signup", data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) FetchProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, token, http.MethodGet, "/customer/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
