package restaurantcache_test

import (
	"testing"
	"time"

	"marketplace/internal/adapters/out/redis/restaurantcache"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, ttl time.Duration) (*restaurantcache.Cache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return restaurantcache.NewCache(client, ttl), server
}

func samplePage() queries.ListRestaurantsQueryResponse {
	return queries.ListRestaurantsQueryResponse{
		Data: []queries.RestaurantSummary{
			{
				ID:          kernel.NewUUID(),
				Name:        "Tandoor House",
				Slug:        "tandoor-house",
				Location:    kernel.MustNewLocation(51.5074, -0.1278),
				PrepMinutes: 25,
				Email:       "hello@tandoor.example",
				Phone:       "+442079460000",
			},
			{
				ID:          kernel.NewUUID(),
				Name:        "Udon Ya",
				Slug:        "udon-ya",
				Location:    kernel.MustNewLocation(35.6762, 139.6503),
				PrepMinutes: 10,
			},
		},
		Page:       1,
		Limit:      2,
		TotalPages: 3,
		TotalItems: 5,
	}
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := newCache(t, time.Minute)

	_, generation, found, err := cache.Get(t.Context(), 1, 10)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, generation)
}

func TestCache_SetThenGet(t *testing.T) {
	ctx := t.Context()
	cache, server := newCache(t, time.Minute)
	page := samplePage()

	require.NoError(t, cache.Set(ctx, 0, 1, 2, page))

	got, _, found, err := cache.Get(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, page, got)
	assert.True(t, server.Exists("restaurants:v0:page:1:limit:2"))

	_, _, found, err = cache.Get(ctx, 2, 2)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Expires(t *testing.T) {
	ctx := t.Context()
	cache, server := newCache(t, 30*time.Second)
	require.NoError(t, cache.Set(ctx, 0, 1, 2, samplePage()))

	server.FastForward(31 * time.Second)

	_, _, found, err := cache.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_DefaultTTL(t *testing.T) {
	cache, server := newCache(t, 0)
	require.NoError(t, cache.Set(t.Context(), 0, 1, 2, samplePage()))

	assert.Equal(t, restaurantcache.DefaultTTL, server.TTL("restaurants:v0:page:1:limit:2"))
}

func TestCache_InvalidateHidesEveryPage(t *testing.T) {
	ctx := t.Context()
	cache, server := newCache(t, time.Minute)
	require.NoError(t, cache.Set(ctx, 0, 1, 2, samplePage()))
	require.NoError(t, cache.Set(ctx, 0, 2, 2, samplePage()))

	require.NoError(t, cache.Invalidate(ctx))

	for _, page := range []int{1, 2} {
		_, generation, found, err := cache.Get(ctx, page, 2)
		require.NoError(t, err)
		assert.False(t, found, "page %d", page)
		assert.Equal(t, int64(1), generation)
	}

	require.NoError(t, cache.Set(ctx, 1, 1, 2, samplePage()))
	assert.True(t, server.Exists("restaurants:v1:page:1:limit:2"))
}

func TestCache_PageLoadedBeforeInvalidateIsNotServed(t *testing.T) {
	ctx := t.Context()
	cache, server := newCache(t, time.Minute)

	_, generation, found, err := cache.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.False(t, found)

	// a restaurant is created while the listing is being loaded
	require.NoError(t, cache.Invalidate(ctx))
	stale := queries.ListRestaurantsQueryResponse{Page: 1, Limit: 10}
	require.NoError(t, cache.Set(ctx, generation, 1, 10, stale))

	_, current, found, err := cache.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, generation+1, current)
	assert.True(t, server.Exists("restaurants:v0:page:1:limit:10"))
	assert.False(t, server.Exists("restaurants:v1:page:1:limit:10"))
}

func TestCache_CorruptEntry(t *testing.T) {
	cache, server := newCache(t, time.Minute)
	require.NoError(t, server.Set("restaurants:v0:page:1:limit:2", "{not json"))

	_, _, found, err := cache.Get(t.Context(), 1, 2)

	require.Error(t, err)
	assert.False(t, found)
}

func TestCache_ServerDown(t *testing.T) {
	cache, server := newCache(t, time.Minute)
	server.Close()

	_, _, _, err := cache.Get(t.Context(), 1, 2)
	require.Error(t, err)
	require.Error(t, cache.Invalidate(t.Context()))
}
