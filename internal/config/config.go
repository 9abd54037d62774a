package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// UpstreamAPIURL est l'adresse de l'API commerce distante
func UpstreamAPIURL() string {
	if url := os.Getenv("UPSTREAM_API_URL"); url != "" {
		return url
	}
	return "http://localhost:8085"
}

func RedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func RedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

func JWTSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	return "super_secret"
}

func SessionSecret() string {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		return secret
	}
	return "session_secret"
}

// CatalogMaxPrice est la borne haute du slider de prix de la page catalogue
func CatalogMaxPrice() float64 {
	if v := os.Getenv("CATALOG_MAX_PRICE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return 1000
}
