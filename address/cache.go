package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCachePrefix = "brinput:cep:"
	defaultCacheTTL    = 24 * time.Hour
)

// Cache stores successful lookups by postal code digits.
type Cache interface {
	Get(ctx context.Context, postalDigits string) (Address, bool, error)
	Set(ctx context.Context, postalDigits string, addr Address) error
}

type RedisCacheConfig struct {
	Prefix string
	TTL    time.Duration
}

type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(client redis.UniversalClient, cfg RedisCacheConfig) *RedisCache {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultCachePrefix
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) key(postalDigits string) string {
	return c.prefix + postalDigits
}

func (c *RedisCache) Get(ctx context.Context, postalDigits string) (Address, bool, error) {
	b, err := c.client.Get(ctx, c.key(postalDigits)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Address{}, false, nil
	}
	if err != nil {
		return Address{}, false, fmt.Errorf("redis cache get: %w", err)
	}

	var addr Address
	if err := json.Unmarshal(b, &addr); err != nil {
		return Address{}, false, fmt.Errorf("redis cache decode: %w", err)
	}
	return addr, true, nil
}

func (c *RedisCache) Set(ctx context.Context, postalDigits string, addr Address) error {
	b, err := json.Marshal(addr)
	if err != nil {
		return fmt.Errorf("redis cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(postalDigits), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis cache set: %w", err)
	}
	return nil
}
