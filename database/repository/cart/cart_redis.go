package cartRepo

import (
	"context"
	"encoding/json"
	"fmt"

	"utflykt/models"

	"github.com/go-redis/redis/v8"
)

// cartKeyPrefix namespaces cart entries in Redis.
const cartKeyPrefix = "cart:"

// RedisCartRepo implements CartRepository on Redis, storing each cart as a
// single JSON blob. Entries never expire; carts survive across sessions.
type RedisCartRepo struct {
	client *redis.Client
}

// NewRedisCartRepo creates a CartRepository backed by the given Redis client.
func NewRedisCartRepo(client *redis.Client) CartRepository {
	return &RedisCartRepo{client: client}
}

func (r *RedisCartRepo) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cartID, err)
	}
	if err := r.client.Set(ctx, cartKeyPrefix+cartID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", cartID, err)
	}
	return nil
}

func (r *RedisCartRepo) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+cartID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("failed to parse persisted cart %s: %w", cartID, err)
	}
	return items, nil
}

func (r *RedisCartRepo) Delete(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", cartID, err)
	}
	return nil
}
