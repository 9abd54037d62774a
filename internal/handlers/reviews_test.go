package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/commerce"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

func setupReviewsRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	Init(commerce.New(srv.URL))

	r := gin.New()
	r.GET("/api/products/:id/reviews", GetProductReviews)
	r.POST("/api/products/:id/reviews", CreateReview)
	return r
}

func TestCreateReviewValidation(t *testing.T) {
	var upstreamCalls atomic.Int32
	r := setupReviewsRouter(t, func(w http.ResponseWriter, req *http.Request) {
		upstreamCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": models.Review{ID: "r1"}})
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/products/p1/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("EmptyCommentRejectedBeforeUpstream", func(t *testing.T) {
		w := post(`{"rating": 4, "comment": ""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, int32(0), upstreamCalls.Load())
	})

	t.Run("RatingOutOfRangeRejected", func(t *testing.T) {
		w := post(`{"rating": 6, "comment": "excellent produit"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = post(`{"rating": 0, "comment": "excellent produit"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		assert.Equal(t, int32(0), upstreamCalls.Load())
	})

	t.Run("ValidReviewForwarded", func(t *testing.T) {
		w := post(`{"rating": 5, "comment": "excellent produit"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int32(1), upstreamCalls.Load())
	})
}

func TestGetProductReviews(t *testing.T) {
	r := setupReviewsRouter(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/reviews/p1", req.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []models.Review{
				{ID: "r1", Rating: 5},
				{ID: "r2", Rating: 2},
			},
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/p1/reviews", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalReviews  int     `json:"total_reviews"`
		AverageRating float64 `json:"average_rating"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.TotalReviews)
	assert.Equal(t, 3.5, body.AverageRating)
}
