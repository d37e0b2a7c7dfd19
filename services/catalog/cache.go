package catalog

import (
	"context"
	"encoding/json"
	"time"

	"cardoctor/models"

	"github.com/go-redis/redis/v8"
)

// ServiceCache holds the full catalog between store reads.
type ServiceCache interface {
	// Get reports ok=false on a cache miss.
	Get(ctx context.Context) (services []models.Service, ok bool, err error)
	Set(ctx context.Context, services []models.Service) error
}

type RedisServiceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisServiceCache(client *redis.Client, ttl time.Duration) ServiceCache {
	return &RedisServiceCache{client: client, ttl: ttl}
}

const servicesCacheKey = "services:all"

func (c *RedisServiceCache) Get(ctx context.Context) ([]models.Service, bool, error) {
	data, err := c.client.Get(ctx, servicesCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var services []models.Service
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, false, err
	}
	return services, true, nil
}

func (c *RedisServiceCache) Set(ctx context.Context, services []models.Service) error {
	data, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, servicesCacheKey, data, c.ttl).Err()
}
