package redis

import (
	"errors"
	"strings"
	"time"
)

type Mode string

const (
	ModeSingle   Mode = "single"
	ModeSentinel Mode = "sentinel"
	ModeCluster  Mode = "cluster"
)

// Config describes a redis deployment. The mode follows from the fields:
// a master name selects sentinel, several addresses select cluster.
type Config struct {
	Addrs        []string
	MasterName   string
	DB           int
	Username     string
	Password     string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	TLSEnabled   bool
}

var (
	ErrAddressRequired   = errors.New("redis: address is required")
	errInvalidDB         = errors.New("redis: db must be >= 0")
	errClusterDB         = errors.New("redis: db must be 0 in cluster mode")
	errSentinelAddrCount = errors.New("redis: sentinel mode requires at least one sentinel address")
)

// ParseAddrs splits a comma-separated address list, dropping blanks.
func ParseAddrs(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func (c Config) addrs() []string {
	out := make([]string, 0, len(c.Addrs))
	for _, a := range c.Addrs {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func (c Config) Mode() Mode {
	switch {
	case strings.TrimSpace(c.MasterName) != "":
		return ModeSentinel
	case len(c.addrs()) > 1:
		return ModeCluster
	default:
		return ModeSingle
	}
}

func (c Config) Validate() error {
	if c.DB < 0 {
		return errInvalidDB
	}
	addrs := c.addrs()
	switch c.Mode() {
	case ModeSentinel:
		if len(addrs) == 0 {
			return errSentinelAddrCount
		}
	case ModeCluster:
		if c.DB != 0 {
			return errClusterDB
		}
	default:
		if len(addrs) == 0 {
			return ErrAddressRequired
		}
	}
	return nil
}
