package lease

import (
	"time"

	"k8s.io/utils/clock"

	"github.com/git-hulk/go-lease/internal"
)

// DefaultTTL is used when no TTL option is given.
const DefaultTTL = 5 * time.Second

// Option configures a Lock during construction.
type Option func(*config)

type config struct {
	ttl     time.Duration
	clock   clock.PassiveClock
	logger  internal.Logging
	metrics Metrics
}

func defaultConfig() config {
	return config{
		ttl:     DefaultTTL,
		clock:   clock.RealClock{},
		metrics: noopMetrics{},
	}
}

// WithTTL sets how long an unreleased lease is honored before it can be reclaimed.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

// WithClock replaces the wall clock, tests pass a fake clock here.
func WithClock(clk clock.PassiveClock) Option {
	return func(c *config) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithLogger sets the logger used for reclamation and release events.
// The package logger from internal.GetLogger is used otherwise.
func WithLogger(logger internal.Logging) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics plugs a metrics sink, see the metrics package for a Prometheus one.
func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}
