package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
)

// La copie locale du panier vit 30 jours, comme côté API distante.
// L'API distante reste la source de vérité au prochain fetch.
const CartTTL = 30 * 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

// GetCart récupère la copie optimiste du panier. Clé absente = panier vide.
func GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	data, err := Redis.Get(ctx, cartKey(userID)).Result()
	if err != nil || data == "" {
		return []models.CartItem{}, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func SaveCart(ctx context.Context, userID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return Redis.Set(ctx, cartKey(userID), data, CartTTL).Err()
}

func ClearCart(ctx context.Context, userID string) error {
	return Redis.Del(ctx, cartKey(userID)).Err()
}

// NextCartSeq attribue un numéro de séquence monotone à chaque mutation du
// panier. Une confirmation distante plus vieille que la dernière séquence
// locale est ignorée au lieu d'écraser un état plus récent.
func NextCartSeq(ctx context.Context, userID string) int64 {
	seq, err := Redis.Incr(ctx, "cart_seq:"+userID).Result()
	if err != nil {
		return 0
	}
	Redis.Expire(ctx, "cart_seq:"+userID, CartTTL)
	return seq
}

func CurrentCartSeq(ctx context.Context, userID string) int64 {
	seq, _ := Redis.Get(ctx, "cart_seq:"+userID).Int64()
	return seq
}

// PublishCartUpdate notifie les websockets ouverts de ce user
func PublishCartUpdate(ctx context.Context, userID, event string) {
	Redis.Publish(ctx, cartKey(userID), event)
}

func SubscribeCart(ctx context.Context, userID string) *redis.PubSub {
	return Redis.Subscribe(ctx, cartKey(userID))
}
