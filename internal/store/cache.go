package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

const (
	ProductCacheTTL  = 10 * time.Minute
	CategoryCacheTTL = 1 * time.Hour
	WishlistCacheTTL = 10 * time.Minute
)

// CachedProducts renvoie le catalogue en cache, ou false pour aller le
// rechercher auprès de l'API distante
func CachedProducts(ctx context.Context) ([]models.Product, bool) {
	val, err := Redis.Get(ctx, "products:all").Result()
	if err != nil || val == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

func CacheProducts(ctx context.Context, products []models.Product) {
	if data, err := json.Marshal(products); err == nil {
		Redis.Set(ctx, "products:all", data, ProductCacheTTL)
	}
}

func CachedCategories(ctx context.Context) ([]models.Category, bool) {
	val, err := Redis.Get(ctx, "categories:all").Result()
	if err != nil || val == "" {
		return nil, false
	}

	var categories []models.Category
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		return nil, false
	}
	return categories, true
}

func CacheCategories(ctx context.Context, categories []models.Category) {
	if data, err := json.Marshal(categories); err == nil {
		Redis.Set(ctx, "categories:all", data, CategoryCacheTTL)
	}
}

func CachedWishlist(ctx context.Context, userID string) ([]models.Product, bool) {
	val, err := Redis.Get(ctx, "wishlist:"+userID).Result()
	if err != nil || val == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

func CacheWishlist(ctx context.Context, userID string, products []models.Product) {
	if data, err := json.Marshal(products); err == nil {
		Redis.Set(ctx, "wishlist:"+userID, data, WishlistCacheTTL)
	}
}

func InvalidateWishlist(ctx context.Context, userID string) {
	Redis.Del(ctx, "wishlist:"+userID)
}
