package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/cart"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/commerce"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/store"
)

// PlaceOrder déclenche le checkout : la commande est créée côté API
// distante à partir du panier du user
func PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	var input struct {
		PaymentMethod string `json:"payment_method"`
	}
	// Body optionnel : credit_card par défaut, comme la page checkout
	if err := c.ShouldBindJSON(&input); err != nil || input.PaymentMethod == "" {
		input.PaymentMethod = "credit_card"
	}

	// Panier vide : refusé avant tout appel réseau
	items, _ := store.GetCart(ctx, sess.UserID)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Votre panier est vide"})
		return
	}

	order, err := api.PlaceOrder(ctx, sess.Token, input.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur lors de la commande: " + err.Error()})
		return
	}

	// La commande emporte le panier
	if err := store.ClearCart(ctx, sess.UserID); err != nil {
		log.Printf("⚠️ Erreur vidage copie panier: %v", err)
	}
	store.PublishCartUpdate(ctx, sess.UserID, "cleared")

	log.Printf("✅ Commande %s passée pour user %s", order.ID, sess.UserID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande passée avec succès",
		"order":   order,
		"totals":  cart.ComputeTotals(items),
	})
}

// GetMyOrders liste les commandes de l'utilisateur connecté
func GetMyOrders(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	orders, err := api.FetchOrders(ctx, sess.Token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération commandes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrderByID récupère une commande spécifique
func GetOrderByID(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)
	orderID := c.Param("id")

	order, err := api.FetchOrder(ctx, sess.Token, orderID)
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération commande: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}
