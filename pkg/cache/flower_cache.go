package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// FlowerCacheTTL is the time-to-live for cached flowers.
	FlowerCacheTTL = time.Hour

	flowerCacheKeyPrefix = "flower"
)

// CachedFlower is the denormalized read model stored in Redis as a JSON value.
type CachedFlower struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FlowerCache provides read/write operations for flower cache entries.
// Key format: "flower:{flowerID}". Entries expire after FlowerCacheTTL;
// writers must also invalidate on update and delete.
type FlowerCache struct {
	client *RedisClient
}

// NewFlowerCache creates a FlowerCache backed by the given RedisClient.
func NewFlowerCache(r *RedisClient) *FlowerCache {
	return &FlowerCache{client: r}
}

// Get retrieves a cached flower. Returns redis.Nil error when the key does
// not exist or has expired.
func (c *FlowerCache) Get(ctx context.Context, flowerID uuid.UUID) (*CachedFlower, error) {
	raw, err := c.client.Client().Get(ctx, c.key(flowerID)).Bytes()
	if err != nil {
		return nil, err
	}
	var cached CachedFlower
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &cached, nil
}

// Set writes a cached flower with the standard TTL.
func (c *FlowerCache) Set(ctx context.Context, flower *CachedFlower) error {
	raw, err := json.Marshal(flower)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(flower.ID), raw, FlowerCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached flower.
func (c *FlowerCache) Delete(ctx context.Context, flowerID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(flowerID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *FlowerCache) key(flowerID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", flowerCacheKeyPrefix, flowerID)
}
