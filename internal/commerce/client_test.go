package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

func TestClientEnvelope(t *testing.T) {
	t.Run("SuccessWithData", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": []map[string]any{
					{"_id": "p1", "name": "Running Shoe", "price": 49.99},
				},
			})
		}))
		defer srv.Close()

		products, err := New(srv.URL).FetchProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, 49.99, products[0].Price)
	})

	t.Run("BareDocumentWithoutEnvelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.Product{ID: "p1", Name: "Hat"})
		}))
		defer srv.Close()

		product, err := New(srv.URL).FetchProduct(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "Hat", product.Name)
	})

	t.Run("SuccessFalseSurfacesMessage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "stock insuffisant",
			})
		}))
		defer srv.Close()

		err := New(srv.URL).AddToCart(context.Background(), "tok", "p1", 2)
		require.Error(t, err)
		assert.Equal(t, "stock insuffisant", err.Error())
	})

	t.Run("NotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "Produit introuvable",
			})
		}))
		defer srv.Close()

		_, err := New(srv.URL).FetchProduct(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "Produit introuvable", err.Error())
	})

	t.Run("BearerTokenAttached", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer mon-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []models.CartItem{}})
		}))
		defer srv.Close()

		_, err := New(srv.URL).FetchCart(context.Background(), "mon-token")
		require.NoError(t, err)
	})

	t.Run("NoTokenNoHeader", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []models.Category{}})
		}))
		defer srv.Close()

		_, err := New(srv.URL).FetchCategories(context.Background())
		require.NoError(t, err)
	})

	t.Run("ErrorWithoutMessageGetsDefault", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := New(srv.URL).FetchOrders(context.Background(), "tok")
		require.Error(t, err)
		assert.Equal(t, "Une erreur est survenue", err.Error())
	})
}

func TestClientPayloads(t *testing.T) {
	t.Run("UpdateQuantityBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/cart/p1", r.URL.Path)

			var body map[string]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 3, body["quantity"])

			json.NewEncoder(w).Encode(map[string]any{"success": true})
		}))
		defer srv.Close()

		err := New(srv.URL).UpdateCartQuantity(context.Background(), "tok", "p1", 3)
		require.NoError(t, err)
	})

	t.Run("PlaceOrderBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "credit_card", body["payment_method"])

			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    models.Order{ID: "o1", Status: "pending"},
			})
		}))
		defer srv.Close()

		order, err := New(srv.URL).PlaceOrder(context.Background(), "tok", "credit_card")
		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
	})

	t.Run("LoginReturnsTokenAndUser", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": models.AuthPayload{
					Token: "jwt-token",
					User:  models.User{ID: "u1", Role: "seller"},
				},
			})
		}))
		defer srv.Close()

		payload, err := New(srv.URL).Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", payload.Token)
		assert.Equal(t, "seller", payload.User.Role)
	})
}
