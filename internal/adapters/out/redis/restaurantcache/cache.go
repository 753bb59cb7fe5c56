// Package restaurantcache keeps rendered restaurant listing pages in Redis.
//
// Keys carry a generation number; Invalidate bumps the generation so every cached
// page becomes unreachable at once and expires through its TTL.
package restaurantcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 5 * time.Minute

	versionKey = "restaurants:version"
)

type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache uses DefaultTTL when ttl is not positive.
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get looks the page up in the current generation and returns that generation
// even on a miss, for the Set that follows.
func (c *Cache) Get(
	ctx context.Context,
	page, limit int,
) (queries.ListRestaurantsQueryResponse, int64, bool, error) {
	generation, err := c.generation(ctx)
	if err != nil {
		return queries.ListRestaurantsQueryResponse{}, 0, false, err
	}

	key := pageKey(generation, page, limit)
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return queries.ListRestaurantsQueryResponse{}, generation, false, nil
	}
	if err != nil {
		return queries.ListRestaurantsQueryResponse{}, 0, false, err
	}

	var dto PageDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return queries.ListRestaurantsQueryResponse{}, 0, false, fmt.Errorf("decode cached page %s: %w", key, err)
	}

	value, err := toResponse(dto)
	if err != nil {
		return queries.ListRestaurantsQueryResponse{}, 0, false, fmt.Errorf("decode cached page %s: %w", key, err)
	}
	return value, generation, true, nil
}

// Set stores the page under the given generation. A generation older than the
// current one is written anyway and simply never read.
func (c *Cache) Set(
	ctx context.Context,
	generation int64,
	page, limit int,
	value queries.ListRestaurantsQueryResponse,
) error {
	key := pageKey(generation, page, limit)
	raw, err := json.Marshal(fromResponse(value))
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops every cached page.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}

func (c *Cache) generation(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func pageKey(generation int64, page, limit int) string {
	return fmt.Sprintf("restaurants:v%d:page:%d:limit:%d", generation, page, limit)
}
