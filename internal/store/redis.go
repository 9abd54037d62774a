package store

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/config"
)

var Redis *redis.Client

// Connect initialise le client Redis partagé (copie optimiste du panier,
// cache catalogue, rate limiting, pubsub panier)
func Connect(ctx context.Context) error {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		return err
	}

	log.Println("✅ Redis connecté")
	return nil
}
