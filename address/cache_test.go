package address

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisCache_Defaults(t *testing.T) {
	c := NewRedisCache(nil, RedisCacheConfig{})
	assert.Equal(t, defaultCachePrefix, c.prefix)
	assert.Equal(t, defaultCacheTTL, c.ttl)
	assert.Equal(t, "brinput:cep:01310930", c.key("01310930"))

	c = NewRedisCache(nil, RedisCacheConfig{Prefix: "test:", TTL: time.Minute})
	assert.Equal(t, "test:01310930", c.key("01310930"))
	assert.Equal(t, time.Minute, c.ttl)
}

func TestRedisCache_UnreachableReturnsErrors(t *testing.T) {
	// A closed port makes every command fail without an external dependency.
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:       []string{"127.0.0.1:1"},
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedisCache(client, RedisCacheConfig{})

	_, ok, err := c.Get(context.Background(), "01310930")
	require.Error(t, err)
	assert.False(t, ok)

	require.Error(t, c.Set(context.Background(), "01310930", paulista))
}
