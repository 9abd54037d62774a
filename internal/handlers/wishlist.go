package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/commerce"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/store"
)

// GetWishlist récupère la wishlist de l'utilisateur (cache 10 min)
func GetWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	products, ok := store.CachedWishlist(ctx, sess.UserID)
	if !ok {
		fetched, err := api.FetchWishlist(ctx, sess.Token)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération wishlist: " + err.Error()})
			return
		}
		products = fetched
		store.CacheWishlist(ctx, sess.UserID, products)
	}

	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": products,
		"count": len(products),
	})
}

// AddToWishlist ajoute un produit à la wishlist
func AddToWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)
	productID := c.Param("productId")

	if err := api.AddToWishlist(ctx, sess.Token, productID); err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur ajout à la wishlist: " + err.Error()})
		return
	}

	// Invalider le cache
	store.InvalidateWishlist(ctx, sess.UserID)

	log.Printf("⭐ Produit %s ajouté à la wishlist de %s", productID, sess.UserID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Produit ajouté à la wishlist",
		"product_id": productID,
	})
}

// RemoveFromWishlist retire un produit de la wishlist
func RemoveFromWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)
	productID := c.Param("productId")

	if err := api.RemoveFromWishlist(ctx, sess.Token, productID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur suppression de la wishlist: " + err.Error()})
		return
	}

	// Invalider le cache
	store.InvalidateWishlist(ctx, sess.UserID)

	log.Printf("🗑️ Produit %s retiré de la wishlist de %s", productID, sess.UserID)

	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
}
