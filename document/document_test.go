package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/git-hulk/go-lease/internal"
	"github.com/git-hulk/go-lease/lease"
)

func TestStoreRoundTrip(t *testing.T) {
	clk := clocktesting.NewFakeClock(time.Now())
	store, err := NewStore(
		lease.WithTTL(5*time.Second),
		lease.WithClock(clk),
		lease.WithLogger(internal.NewZapLogging(zap.NewNop())),
	)
	require.NoError(t, err)
	require.Equal(t, Default(), store.GetContent())

	key := "John Doe"
	require.NoError(t, store.Acquire(key))
	require.True(t, store.IsLocked())

	updated := Document{
		Title:  "New Document",
		Body:   "This is a new document",
		Footer: "End of new document",
	}
	got, err := store.MutateContent(key, updated)
	require.NoError(t, err)
	require.Equal(t, updated, got)
	require.Equal(t, updated, store.GetContent())
	require.False(t, store.IsLocked())
}

func TestNewStoreInvalidTTL(t *testing.T) {
	_, err := NewStore(lease.WithTTL(0))
	require.ErrorIs(t, err, lease.ErrInvalidTTL)
}
