package lease

import "github.com/google/uuid"

// NewOwnerID returns a random owner identifier for callers without a natural name.
func NewOwnerID() string {
	return uuid.NewString()
}
