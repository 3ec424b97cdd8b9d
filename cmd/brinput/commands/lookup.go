package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/vortex-fintech/brinput/address"
	"github.com/vortex-fintech/brinput/data/redis"
	"github.com/vortex-fintech/brinput/logger"
)

type lookupOptions struct {
	baseURL     string
	timeout     time.Duration
	redisAddr   string
	redisMaster string
	cacheTTL    time.Duration
}

func (o *lookupOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.baseURL, "base-url", address.DefaultViaCEPBaseURL, "ViaCEP base URL")
	f.DurationVar(&o.timeout, "timeout", 3*time.Second, "per-request timeout")
	f.StringVar(&o.redisAddr, "redis-addr", "", "comma-separated redis addresses for the lookup cache (disabled when empty)")
	f.StringVar(&o.redisMaster, "redis-master", "", "sentinel master name")
	f.DurationVar(&o.cacheTTL, "cache-ttl", 24*time.Hour, "lookup cache TTL")
}

// autofiller wires provider, cache, logger and metrics. An unreachable
// redis disables the cache instead of failing the command. The returned func
// releases the cache connection and logs the collected metrics.
func (o *lookupOptions) autofiller(ctx context.Context, log *logger.Logger) (*address.Autofiller, func()) {
	reg := prometheus.NewRegistry()
	opts := []address.Option{
		address.WithLogger(log),
		address.WithMetrics(address.NewMetrics(reg, "brinput", "address")),
	}

	var client goredis.UniversalClient
	if addrs := redis.ParseAddrs(o.redisAddr); len(addrs) > 0 {
		cfg := redis.Config{Addrs: addrs, MasterName: o.redisMaster, DialTimeout: o.timeout}
		c, err := redis.Open(ctx, cfg)
		if err != nil {
			log.Warnw("lookup cache disabled", "mode", cfg.Mode(), "error", err)
		} else {
			client = c
			opts = append(opts, address.WithCache(address.NewRedisCache(client, address.RedisCacheConfig{TTL: o.cacheTTL})))
		}
	}

	provider := address.NewViaCEP(address.ViaCEPConfig{BaseURL: o.baseURL, Timeout: o.timeout})
	return address.NewAutofiller(provider, opts...), func() {
		logMetrics(log, reg)
		if client != nil {
			if err := client.Close(); err != nil {
				log.Warnw("redis close failed", "error", err)
			}
		}
	}
}

func logMetrics(log logger.Interface, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Warnw("metrics gather failed", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			kv := []any{"metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				kv = append(kv, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				kv = append(kv, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				kv = append(kv, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			log.Debugw("lookup metric", kv...)
		}
	}
}

func lookupCmd(a *app) *cobra.Command {
	var o lookupOptions
	cmd := &cobra.Command{
		Use:   "lookup <postal-code>",
		Short: "Resolve a postal code to an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			af, done := o.autofiller(cmd.Context(), a.logOrNop())
			defer done()

			addr, err := af.Lookup(cmd.Context(), args[0])
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), address.ToErrorResponse(err).ToString())
				return ErrFailed
			}
			return writeJSON(cmd, addr)
		},
	}
	o.bind(cmd)
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
