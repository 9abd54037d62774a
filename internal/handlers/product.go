package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/commerce"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/store"
)

const relatedProductsLimit = 4

// GetProduct sert la page détail : le produit, ses avis avec la note
// moyenne, jusqu'à 4 produits de la même catégorie, et l'état wishlist
// si l'utilisateur est connecté
func GetProduct(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("id")

	product, err := api.FetchProduct(ctx, productID)
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération produit: " + err.Error()})
		return
	}

	// Les avis et les produits liés sont décoratifs : une erreur ici
	// n'empêche pas d'afficher la page
	reviews, err := api.FetchReviews(ctx, productID)
	if err != nil {
		reviews = []models.Review{}
	}

	related := relatedProducts(c, product)

	inWishlist := false
	sess := middleware.CurrentSession(c)
	if sess.Authenticated() {
		if wishlist, err := api.FetchWishlist(ctx, sess.Token); err == nil {
			for _, p := range wishlist {
				if p.ID == productID {
					inWishlist = true
					break
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"product":        product,
		"reviews":        reviews,
		"total_reviews":  len(reviews),
		"average_rating": averageRating(reviews),
		"related":        related,
		"in_wishlist":    inWishlist,
	})
}

// Produits de la même catégorie, dans l'ordre du catalogue
func relatedProducts(c *gin.Context, product *models.Product) []models.Product {
	ctx := c.Request.Context()

	all, ok := store.CachedProducts(ctx)
	if !ok {
		fetched, err := api.FetchProducts(ctx)
		if err != nil {
			return []models.Product{}
		}
		all = fetched
		store.CacheProducts(ctx, all)
	}

	related := []models.Product{}
	for _, p := range all {
		if p.ID == product.ID {
			continue
		}
		if p.CategoryID != product.CategoryID {
			continue
		}
		related = append(related, p)
		if len(related) == relatedProductsLimit {
			break
		}
	}
	return related
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var total int
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews))
}
