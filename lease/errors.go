package lease

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyLocked = errors.New("lease already held")
	ErrUnauthorized  = errors.New("you're not the lease holder")
	ErrInvalidOwner  = errors.New("owner cannot be empty")
	ErrInvalidTTL    = errors.New("ttl must be positive")
)

// AlreadyLockedError is returned by Acquire when an unexpired lease is held.
// It matches ErrAlreadyLocked with errors.Is.
type AlreadyLockedError struct {
	HeldBy string
}

func (e *AlreadyLockedError) Error() string {
	return fmt.Sprintf("%s by %q", ErrAlreadyLocked, e.HeldBy)
}

func (e *AlreadyLockedError) Is(target error) bool {
	return target == ErrAlreadyLocked
}
