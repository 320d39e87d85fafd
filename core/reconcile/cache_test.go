package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func countingLoader(calls *int, items []Item) SnapshotLoader {
	return func(ctx context.Context, owner string) ([]Item, error) {
		*calls++
		return items, nil
	}
}

func TestSnapshotCache_ZeroTTLAlwaysLoads(t *testing.T) {
	calls := 0
	cache := NewSnapshotCache(0, countingLoader(&calls, []Item{{ID: "1"}}))

	_, err := cache.Get(context.Background(), "alice")
	assert.NoError(t, err)
	_, err = cache.Get(context.Background(), "alice")
	assert.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestSnapshotCache_ServesFromCacheWithinTTL(t *testing.T) {
	calls := 0
	cache := NewSnapshotCache(time.Minute, countingLoader(&calls, []Item{{ID: "1"}}))

	first, err := cache.Get(context.Background(), "alice")
	assert.NoError(t, err)
	second, err := cache.Get(context.Background(), "alice")
	assert.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestSnapshotCache_OwnersAreIndependent(t *testing.T) {
	calls := 0
	cache := NewSnapshotCache(time.Minute, countingLoader(&calls, nil))

	_, _ = cache.Get(context.Background(), "alice")
	_, _ = cache.Get(context.Background(), "bob")

	assert.Equal(t, 2, calls)
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	calls := 0
	cache := NewSnapshotCache(time.Minute, countingLoader(&calls, nil))

	_, _ = cache.Get(context.Background(), "alice")
	cache.Invalidate("alice")
	_, _ = cache.Get(context.Background(), "alice")

	assert.Equal(t, 2, calls)
}

func TestSnapshotCache_LoaderErrorNotCached(t *testing.T) {
	calls := 0
	failing := func(ctx context.Context, owner string) ([]Item, error) {
		calls++
		return nil, assert.AnError
	}
	cache := NewSnapshotCache(time.Minute, failing)

	_, err := cache.Get(context.Background(), "alice")
	assert.Error(t, err)
	_, err = cache.Get(context.Background(), "alice")
	assert.Error(t, err)

	assert.Equal(t, 2, calls)
}
