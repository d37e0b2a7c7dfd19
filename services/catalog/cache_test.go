package catalog

import (
	"context"
	"testing"
	"time"

	"cardoctor/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, ServiceCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisServiceCache(client, ttl)
}

func TestRedisServiceCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		_, cache := newRedisCache(t, time.Minute)

		services, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, services)
	})

	t.Run("hit after set keeps every field", func(t *testing.T) {
		mr, cache := newRedisCache(t, 10*time.Minute)
		stored := []models.Service{
			{
				ID:        primitive.NewObjectID(),
				ServiceID: "02",
				Title:     "Engine repair",
				Img:       "https://img.example/engine",
				Price:     150,
				Extra:     bson.M{"rating": 4.5, "category": "engine"},
			},
			{ID: primitive.NewObjectID(), Title: "Wash", Price: 20},
		}

		require.NoError(t, cache.Set(ctx, stored))
		assert.True(t, mr.Exists("services:all"))
		assert.Equal(t, 10*time.Minute, mr.TTL("services:all"))

		services, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, stored, services)
	})

	t.Run("entry expires with its ttl", func(t *testing.T) {
		mr, cache := newRedisCache(t, time.Minute)
		require.NoError(t, cache.Set(ctx, []models.Service{{ID: primitive.NewObjectID(), Price: 1}}))

		mr.FastForward(2 * time.Minute)

		_, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt entry is an error", func(t *testing.T) {
		mr, cache := newRedisCache(t, time.Minute)
		require.NoError(t, mr.Set("services:all", "not json"))

		_, ok, err := cache.Get(ctx)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
