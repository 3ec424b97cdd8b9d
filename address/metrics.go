package address

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	sourceCache    = "cache"
	sourceProvider = "provider"
	sourceInput    = "input"

	resultHit      = "hit"
	resultMiss     = "miss"
	resultError    = "error"
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
)

// Metrics records lookup outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	lookups  *prometheus.CounterVec
	duration prometheus.Histogram
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) prometheus.Collector {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
	}
	return c
}

func NewMetrics(reg prometheus.Registerer, namespace, subsystem string) *Metrics {
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "lookups_total", Help: "Postal code lookups by source and result",
	}, []string{"source", "result"})

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "lookup_duration_seconds", Help: "Duration of provider lookups including retries",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{lookups: lookups, duration: duration}
	if c, ok := registerCollector(reg, lookups).(*prometheus.CounterVec); ok {
		m.lookups = c
	}
	if c, ok := registerCollector(reg, duration).(prometheus.Histogram); ok {
		m.duration = c
	}
	return m
}

func (m *Metrics) inc(source, result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(source, result).Inc()
}

func (m *Metrics) observe(d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}
