// Package metrics exports lease events to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/git-hulk/go-lease/lease"
)

const (
	resultOK     = "ok"
	resultDenied = "denied"
)

// Collector implements lease.Metrics with Prometheus instruments.
type Collector struct {
	// Acquires counts Acquire calls by result.
	Acquires *prometheus.CounterVec
	// Mutations counts MutateContent calls by result.
	Mutations *prometheus.CounterVec
	// Reclaims counts expired leases taken back.
	Reclaims prometheus.Counter
	// Releases counts leases freed by Release or a successful mutation.
	Releases prometheus.Counter
	// Locked is 1 while a lease is held.
	Locked prometheus.Gauge
}

var _ lease.Metrics = (*Collector)(nil)

// NewCollector creates the instruments under the given metric namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		Acquires: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lease_acquire_total",
			Help:      "Total number of lease acquisitions by result",
		}, []string{"result"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lease_mutate_total",
			Help:      "Total number of content mutations by result",
		}, []string{"result"}),
		Reclaims: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lease_reclaim_total",
			Help:      "Total number of expired leases reclaimed",
		}),
		Releases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lease_release_total",
			Help:      "Total number of held leases released",
		}),
		Locked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lease_locked",
			Help:      "Whether the lease is currently held",
		}),
	}
}

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Register registers all instruments on reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.Acquires, c.Mutations, c.Reclaims, c.Releases, c.Locked} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) ObserveAcquire(ok bool) {
	c.Acquires.WithLabelValues(result(ok)).Inc()
}

func (c *Collector) ObserveReclaim() {
	c.Reclaims.Inc()
}

func (c *Collector) ObserveMutate(ok bool) {
	c.Mutations.WithLabelValues(result(ok)).Inc()
}

func (c *Collector) ObserveRelease() {
	c.Releases.Inc()
}

func (c *Collector) SetLocked(locked bool) {
	if locked {
		c.Locked.Set(1)
		return
	}
	c.Locked.Set(0)
}

func result(ok bool) string {
	if ok {
		return resultOK
	}
	return resultDenied
}
