package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

// Spec reprend les trois filtres de la page catalogue : recherche texte,
// fourchette de prix (bornes incluses) et catégories cochées.
// Un ensemble de catégories vide signifie "toutes les catégories".
type Spec struct {
	Search     string
	MinPrice   float64
	MaxPrice   float64
	Categories []string
}

// DefaultSpec est l'état initial de la page : pas de recherche,
// toute la fourchette de prix, aucune catégorie cochée.
func DefaultSpec(maxPrice float64) Spec {
	return Spec{MinPrice: 0, MaxPrice: maxPrice}
}

// SpecFromQuery construit un Spec depuis les query params (q, min_price,
// max_price, categories). Les valeurs illisibles gardent le défaut :
// cette fonction ne peut pas échouer.
func SpecFromQuery(values url.Values, maxPrice float64) Spec {
	spec := DefaultSpec(maxPrice)

	spec.Search = values.Get("q")

	if v := values.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.MinPrice = f
		}
	}
	if v := values.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.MaxPrice = f
		}
	}

	// Accepte "categories=a,b" et "categories=a&categories=b"
	for _, raw := range values["categories"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				spec.Categories = append(spec.Categories, id)
			}
		}
	}

	return spec
}

// Filter retourne la sous-liste des produits qui passent les trois filtres,
// dans l'ordre d'origine. Fonction pure, appelée à chaque frappe clavier.
func Filter(products []models.Product, spec Spec) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesSearch(p, spec.Search) && matchesPrice(p, spec) && matchesCategory(p, spec.Categories) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Recherche insensible à la casse sur le nom OU la description
func matchesSearch(p models.Product, search string) bool {
	if search == "" {
		return true
	}
	return containsIgnoreCase(p.Name, search) || containsIgnoreCase(p.Description, search)
}

func matchesPrice(p models.Product, spec Spec) bool {
	return p.Price >= spec.MinPrice && p.Price <= spec.MaxPrice
}

func matchesCategory(p models.Product, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, id := range categories {
		if p.CategoryID == id {
			return true
		}
	}
	return false
}

// Helper pour recherche insensible à la casse
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
