// Package redis opens go-redis universal clients from a validated Config.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 3 * time.Second

// NewUniversal is swapped in tests to capture the options.
var NewUniversal = func(opt *goredis.UniversalOptions) goredis.UniversalClient {
	return goredis.NewUniversalClient(opt)
}

func (c Config) options() *goredis.UniversalOptions {
	opt := &goredis.UniversalOptions{
		Addrs:        c.addrs(),
		MasterName:   strings.TrimSpace(c.MasterName),
		DB:           c.DB,
		Username:     c.Username,
		Password:     c.Password,
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
	if c.TLSEnabled {
		opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opt
}

// Open validates cfg, builds a client and pings it. The client is closed
// when the ping fails.
func Open(ctx context.Context, cfg Config) (goredis.UniversalClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rdb := NewUniversal(cfg.options())

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Mode(), err)
	}
	return rdb, nil
}
