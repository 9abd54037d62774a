package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/commerce"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

// GetProductReviews récupère les avis d'un produit avec la note moyenne
func GetProductReviews(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("id")

	reviews, err := api.FetchReviews(ctx, productID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur lecture avis: " + err.Error()})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"total_reviews":  len(reviews),
		"average_rating": averageRating(reviews),
	})
}

// CreateReview crée un avis sur un produit. La validation (note 1-5,
// commentaire non vide) se fait avant tout appel réseau.
func CreateReview(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)
	productID := c.Param("id")

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment" binding:"required,max=500"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	review, err := api.CreateReview(ctx, sess.Token, productID, req.Rating, req.Comment)
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur création avis: " + err.Error()})
		return
	}

	log.Printf("⭐ Avis créé pour produit %s (note: %d/5)", productID, req.Rating)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Avis créé avec succès",
		"review":  review,
	})
}
