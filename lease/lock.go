// Package lease implements an in-process exclusive lease that guards a piece
// of content. A named owner acquires the lease, and only that owner may
// replace the content while the lease is unexpired; a successful mutation
// releases the lease. Expired leases are reclaimed lazily by the next Acquire
// or MutateContent call, there is no background sweeper.
package lease

import (
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/git-hulk/go-lease/internal"
)

// Lock is a single lease guarding content of type T.
type Lock[T any] struct {
	ttl     time.Duration
	clock   clock.PassiveClock
	logger  internal.Logging
	metrics Metrics
	stats   counters

	// rwmu protects state and content together
	rwmu    sync.RWMutex
	state   lockState
	content T
}

// New creates an unlocked Lock holding initial as its content.
func New[T any](initial T, opts ...Option) (*Lock[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &Lock[T]{
		ttl:     cfg.ttl,
		clock:   cfg.clock,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		content: initial,
	}, nil
}

// TTL returns the lease duration.
func (l *Lock[T]) TTL() time.Duration {
	return l.ttl
}

// Acquire takes the lease for owner. An expired lease is reclaimed first,
// even when the acquisition itself fails. It returns an *AlreadyLockedError
// naming the holder if an unexpired lease exists, the holder included.
func (l *Lock[T]) Acquire(owner string) error {
	if owner == "" {
		return ErrInvalidOwner
	}

	l.rwmu.Lock()
	defer l.rwmu.Unlock()

	now := l.clock.Now()
	l.reclaimExpired(now)
	if l.state.locked() {
		l.stats.contended.Inc()
		l.metrics.ObserveAcquire(false)
		return &AlreadyLockedError{HeldBy: l.state.owner}
	}
	l.state = lockState{owner: owner, acquiredAt: now}
	l.stats.acquired.Inc()
	l.metrics.ObserveAcquire(true)
	l.metrics.SetLocked(true)
	return nil
}

// Release unlocks the lease regardless of who holds it. Releasing an
// unlocked lease is a no-op.
func (l *Lock[T]) Release() {
	l.rwmu.Lock()
	defer l.rwmu.Unlock()

	if !l.state.locked() {
		return
	}
	l.log().Printf("Lease held by %s released", l.state.owner)
	l.releaseLocked()
}

// IsLocked reports whether a lease is held. Expired leases still count as
// locked until they are reclaimed.
func (l *Lock[T]) IsLocked() bool {
	l.rwmu.RLock()
	defer l.rwmu.RUnlock()
	return l.state.locked()
}

// IsExpired reports whether the held lease is older than the TTL.
func (l *Lock[T]) IsExpired() bool {
	l.rwmu.RLock()
	defer l.rwmu.RUnlock()
	return l.state.expired(l.clock.Now(), l.ttl)
}

// Holder returns the current owner and when the lease was taken.
func (l *Lock[T]) Holder() (owner string, acquiredAt time.Time, ok bool) {
	l.rwmu.RLock()
	defer l.rwmu.RUnlock()
	if !l.state.locked() {
		return "", time.Time{}, false
	}
	return l.state.owner, l.state.acquiredAt, true
}

// MutateContent replaces the content if owner holds an unexpired lease, then
// releases the lease and returns the new content. Any other caller gets
// ErrUnauthorized and the content is left untouched.
func (l *Lock[T]) MutateContent(owner string, content T) (T, error) {
	l.rwmu.Lock()
	defer l.rwmu.Unlock()

	l.reclaimExpired(l.clock.Now())
	if !l.state.heldBy(owner) {
		var zero T
		l.stats.unauthorized.Inc()
		l.metrics.ObserveMutate(false)
		return zero, ErrUnauthorized
	}
	l.content = content
	l.stats.mutated.Inc()
	l.metrics.ObserveMutate(true)
	l.releaseLocked()
	return l.content, nil
}

// GetContent returns the current content, no lease is required.
func (l *Lock[T]) GetContent() T {
	l.rwmu.RLock()
	defer l.rwmu.RUnlock()
	return l.content
}

// Stats returns the operation counters.
func (l *Lock[T]) Stats() Stats {
	return l.stats.snapshot()
}

// reclaimExpired must be called with rwmu held for writing.
func (l *Lock[T]) reclaimExpired(now time.Time) {
	if !l.state.expired(now, l.ttl) {
		return
	}
	l.log().Printf("Lease held by %s expired after %v, reclaiming", l.state.owner, now.Sub(l.state.acquiredAt))
	l.stats.reclaimed.Inc()
	l.metrics.ObserveReclaim()
	l.state.reset()
	l.metrics.SetLocked(false)
}

// releaseLocked must be called with rwmu held for writing.
func (l *Lock[T]) releaseLocked() {
	l.state.reset()
	l.stats.released.Inc()
	l.metrics.ObserveRelease()
	l.metrics.SetLocked(false)
}

func (l *Lock[T]) log() internal.Logging {
	if l.logger != nil {
		return l.logger
	}
	return internal.GetLogger()
}
