//go:build integration

package redis_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	redispkg "github.com/vortex-fintech/brinput/data/redis"
)

func TestOpen_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := redispkg.Open(ctx, redispkg.Config{Addrs: redispkg.ParseAddrs(addr), DialTimeout: 2 * time.Second})
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	key := fmt.Sprintf("brinput:it:%d", time.Now().UnixNano())
	require.NoError(t, c.Set(ctx, key, "ok", 30*time.Second).Err())
	v, err := c.Get(ctx, key).Result()
	require.NoError(t, err)
	require.Equal(t, "ok", v)
}
