package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/catalog"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/config"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/store"
)

// GetProducts sert la page catalogue : catalogue complet depuis l'API
// distante (via le cache Redis), puis filtrage en mémoire d'après les
// query params (q, min_price, max_price, categories). Le filtre est
// recalculé à chaque appel, jamais mémoïsé.
func GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	products, ok := store.CachedProducts(ctx)
	if !ok {
		fetched, err := api.FetchProducts(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération produits: " + err.Error()})
			return
		}
		products = fetched
		store.CacheProducts(ctx, products)
	}

	spec := catalog.SpecFromQuery(c.Request.URL.Query(), config.CatalogMaxPrice())
	filtered := catalog.Filter(products, spec)

	c.JSON(http.StatusOK, gin.H{
		"products": filtered,
		"count":    len(filtered),
		"total":    len(products),
	})
}

// GetCategories sert la liste des catégories du panneau de filtres
func GetCategories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, ok := store.CachedCategories(ctx)
	if !ok {
		fetched, err := api.FetchCategories(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération catégories: " + err.Error()})
			return
		}
		categories = fetched
		store.CacheCategories(ctx, categories)
	}

	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}
