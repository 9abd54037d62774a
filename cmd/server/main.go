package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/commerce"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/config"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/handlers"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/routes"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/store"
)

func main() {
	config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := store.Connect(ctx); err != nil {
		log.Fatalf("❌ Échec connexion Redis: %v", err)
	}

	middleware.InitSessionStore(config.SessionSecret())

	upstream := config.UpstreamAPIURL()
	handlers.Init(commerce.New(upstream))
	log.Println("✅ API commerce distante:", upstream)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🚀 Boutique lancée sur le port", port)
	r.Run(":" + port)
}
