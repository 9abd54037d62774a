package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/cart"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket pousse les lignes et les totaux du panier à chaque
// changement, via le canal Redis du user
func CartWebSocket(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := store.SubscribeCart(ctx, sess.UserID)
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	for {
		select {
		case msg := <-ch:
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			items, err := store.GetCart(ctx, sess.UserID)
			if err != nil {
				items = []models.CartItem{}
			}

			response := map[string]interface{}{
				"type":   "cart_updated",
				"items":  items,
				"totals": cart.ComputeTotals(items),
				"count":  len(items),
			}

			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
