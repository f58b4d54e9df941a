package cart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	cart := &domain.Cart{
		UserID: testUser,
		Items: []domain.CartItem{
			{ProductID: "prod_001", Quantity: 2},
			{ProductID: "prod_007", Quantity: 3},
		},
		CreatedAt: time.Now().Truncate(time.Millisecond),
		UpdatedAt: time.Now().Truncate(time.Millisecond),
	}

	require.NoError(t, cache.Set(ctx, testUser, cart))

	got, err := cache.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, cart.UserID, got.UserID)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "prod_001", got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "prod_007", got.Items[1].ProductID)
	assert.Equal(t, 3, got.Items[1].Quantity)
}

func TestRedisCache_Miss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	got, err := cache.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

// A corrupt entry is discarded and reported as a miss so the collection
// resets instead of failing.
func TestRedisCache_CorruptEntryDiscarded(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	key := cacheKey(testUser)
	require.NoError(t, mr.Set(key, "{not json"))

	_, err := cache.Get(ctx, testUser)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.False(t, mr.Exists(key), "corrupt entry must be removed")
}

func TestRedisCache_SetAppliesTTLWithJitter(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	cart := &domain.Cart{UserID: testUser}
	require.NoError(t, cache.Set(context.Background(), testUser, cart))

	ttl := mr.TTL(cacheKey(testUser))
	assert.GreaterOrEqual(t, ttl, 15*time.Minute)
	assert.LessOrEqual(t, ttl, 20*time.Minute)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	cartJSON, _ := json.Marshal(&domain.Cart{UserID: testUser})
	require.NoError(t, mr.Set(cacheKey(testUser), string(cartJSON)))

	require.NoError(t, cache.Delete(ctx, testUser))
	assert.False(t, mr.Exists(cacheKey(testUser)))

	// Deleting an absent key is not an error.
	assert.NoError(t, cache.Delete(ctx, "nonexistent"))
}

func TestCacheKeyFormat(t *testing.T) {
	assert.Equal(t, "cart:test123", cacheKey("test123"))
}
