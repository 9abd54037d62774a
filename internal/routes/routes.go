package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/handlers"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Auth
	api.POST("/auth/login", handlers.Login)
	api.POST("/auth/signup", handlers.Signup)
	api.POST("/auth/logout", handlers.Logout)

	// Catalogue (public)
	api.GET("/products", middleware.SearchRateLimit(), handlers.GetProducts)
	api.GET("/products/:id", middleware.OptionalAuth(), handlers.GetProduct)
	api.GET("/products/:id/reviews", handlers.GetProductReviews)
	api.GET("/categories", handlers.GetCategories)

	// Espace connecté
	auth := api.Group("")
	auth.Use(middleware.AuthRequired())

	auth.GET("/me", handlers.GetProfile)

	auth.GET("/cart", handlers.GetCart)
	auth.GET("/cart/ws", handlers.CartWebSocket)
	auth.POST("/cart/add", middleware.CartRateLimit(), handlers.AddToCart)
	auth.PUT("/cart/:productId", handlers.UpdateCartQuantity)
	auth.DELETE("/cart/:productId", handlers.RemoveFromCart)
	auth.DELETE("/cart", handlers.ClearCart)

	auth.POST("/orders", handlers.PlaceOrder)
	auth.GET("/orders", handlers.GetMyOrders)
	auth.GET("/orders/:id", handlers.GetOrderByID)

	auth.GET("/wishlist", handlers.GetWishlist)
	auth.POST("/wishlist/:productId", handlers.AddToWishlist)
	auth.DELETE("/wishlist/:productId", handlers.RemoveFromWishlist)

	auth.POST("/products/:id/reviews", handlers.CreateReview)
}
