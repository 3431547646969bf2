package lease

import "time"

// lockState is the current lease. The zero value is unlocked.
type lockState struct {
	owner      string
	acquiredAt time.Time
}

func (s *lockState) locked() bool {
	return s.owner != ""
}

func (s *lockState) expired(now time.Time, ttl time.Duration) bool {
	return s.locked() && now.Sub(s.acquiredAt) > ttl
}

func (s *lockState) heldBy(owner string) bool {
	return s.locked() && s.owner == owner
}

func (s *lockState) reset() {
	s.owner = ""
	s.acquiredAt = time.Time{}
}
