package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/cart"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/commerce"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/store"
)

// Les mutations du panier sont optimistes : la copie locale Redis est
// écrite avant l'appel distant, et n'est PAS restaurée si l'appel échoue
// (comportement assumé, voir DESIGN.md). L'API distante redevient la
// source de vérité au prochain GET.

// GetCart sert la page panier : lignes + totaux dérivés
func GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	items, err := api.FetchCart(ctx, sess.Token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération panier: " + err.Error()})
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}

	// Le fetch distant rafraîchit la copie optimiste
	if err := store.SaveCart(ctx, sess.UserID, items); err != nil {
		log.Printf("⚠️ Erreur sauvegarde copie panier: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"totals": cart.ComputeTotals(items),
		"count":  len(items),
	})
}

// AddToCart ajoute un produit au panier
func AddToCart(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	// Le prix et le nom sont figés au moment de l'ajout
	product, err := api.FetchProduct(ctx, input.ProductID)
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération produit: " + err.Error()})
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  input.Quantity,
		Image:     image,
	}

	items := applyOptimistic(c, sess.UserID, func(items []models.CartItem) []models.CartItem {
		return cart.Merge(items, item)
	})

	if err := api.AddToCart(ctx, sess.Token, input.ProductID, input.Quantity); err != nil {
		// Pas de rollback de la copie locale : on surface juste l'erreur
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur ajout au panier: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Produit ajouté au panier",
		"items":       items,
		"totals":      cart.ComputeTotals(items),
		"mutation_id": uuid.NewString(),
	})
}

// UpdateCartQuantity fixe la quantité d'une ligne. Une quantité < 1 est
// ignorée silencieusement : ni mutation locale, ni appel distant.
func UpdateCartQuantity(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)
	productID := c.Param("productId")

	var input struct {
		Quantity int `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Quantity < 1 {
		items, _ := store.GetCart(ctx, sess.UserID)
		c.JSON(http.StatusOK, gin.H{
			"items":  items,
			"totals": cart.ComputeTotals(items),
		})
		return
	}

	items := applyOptimistic(c, sess.UserID, func(items []models.CartItem) []models.CartItem {
		return cart.SetQuantity(items, productID, input.Quantity)
	})

	if err := api.UpdateCartQuantity(ctx, sess.Token, productID, input.Quantity); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur mise à jour quantité: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"totals": cart.ComputeTotals(items),
	})
}

// RemoveFromCart supprime une ligne du panier
func RemoveFromCart(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)
	productID := c.Param("productId")

	items := applyOptimistic(c, sess.UserID, func(items []models.CartItem) []models.CartItem {
		return cart.Remove(items, productID)
	})

	if err := api.RemoveFromCart(ctx, sess.Token, productID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur suppression du panier: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   items,
		"totals":  cart.ComputeTotals(items),
	})
}

// ClearCart vide la copie locale (après commande, ou à la demande)
func ClearCart(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	if err := store.ClearCart(ctx, sess.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}
	store.PublishCartUpdate(ctx, sess.UserID, "cleared")

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

// applyOptimistic applique une mutation à la copie locale et notifie les
// websockets. Chaque mutation prend un numéro de séquence : une resynchro
// déclenchée par une confirmation dépassée serait ignorée.
func applyOptimistic(c *gin.Context, userID string, mutate func([]models.CartItem) []models.CartItem) []models.CartItem {
	ctx := c.Request.Context()

	seq := store.NextCartSeq(ctx, userID)

	items, err := store.GetCart(ctx, userID)
	if err != nil {
		items = []models.CartItem{}
	}
	items = mutate(items)

	if seq == store.CurrentCartSeq(ctx, userID) {
		if err := store.SaveCart(ctx, userID, items); err != nil {
			log.Printf("⚠️ Erreur sauvegarde copie panier: %v", err)
		}
		store.PublishCartUpdate(ctx, userID, "updated")
	}

	return items
}
