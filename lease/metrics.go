package lease

import "go.uber.org/atomic"

// Metrics receives lease lifecycle events. Implementations must not block,
// they are called while the lock is held.
type Metrics interface {
	ObserveAcquire(ok bool)
	ObserveReclaim()
	ObserveMutate(ok bool)
	ObserveRelease()
	SetLocked(locked bool)
}

type noopMetrics struct{}

func (noopMetrics) ObserveAcquire(bool) {}
func (noopMetrics) ObserveReclaim()     {}
func (noopMetrics) ObserveMutate(bool)  {}
func (noopMetrics) ObserveRelease()     {}
func (noopMetrics) SetLocked(bool)      {}

// Stats is a point in time copy of the operation counters of a Lock.
type Stats struct {
	Acquired     int64
	Contended    int64
	Reclaimed    int64
	Mutated      int64
	Unauthorized int64
	Released     int64
}

type counters struct {
	acquired     atomic.Int64
	contended    atomic.Int64
	reclaimed    atomic.Int64
	mutated      atomic.Int64
	unauthorized atomic.Int64
	released     atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Acquired:     c.acquired.Load(),
		Contended:    c.contended.Load(),
		Reclaimed:    c.reclaimed.Load(),
		Mutated:      c.mutated.Load(),
		Unauthorized: c.unauthorized.Load(),
		Released:     c.released.Load(),
	}
}
