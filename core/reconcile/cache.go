package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// SnapshotLoader fetches the current inventory snapshot for one owner.
type SnapshotLoader func(ctx context.Context, owner string) ([]Item, error)

// snapshotEntry is one cached per-owner snapshot.
type snapshotEntry struct {
	items []Item
	built time.Time
}

// SnapshotCache caches per-owner inventory snapshots for a short TTL so that
// back-to-back engine calls (e.g. checking a recipe, then merging its
// shortfall) don't re-read an unchanged inventory. Singleflight collapses
// concurrent rebuilds for the same owner.
//
// A TTL of zero disables caching entirely: every Get hits the loader, which
// is the default and matches the snapshot-per-action model.
type SnapshotCache struct {
	ttl  time.Duration
	load SnapshotLoader

	mu      sync.RWMutex
	entries map[string]*snapshotEntry
	sf      singleflight.Group
}

// NewSnapshotCache creates a cache around the given loader.
func NewSnapshotCache(ttl time.Duration, load SnapshotLoader) *SnapshotCache {
	return &SnapshotCache{
		ttl:     ttl,
		load:    load,
		entries: make(map[string]*snapshotEntry),
	}
}

// Get returns the owner's inventory snapshot, from cache when fresh.
func (c *SnapshotCache) Get(ctx context.Context, owner string) ([]Item, error) {
	if c.ttl <= 0 {
		return c.load(ctx, owner)
	}

	c.mu.RLock()
	entry, ok := c.entries[owner]
	c.mu.RUnlock()

	if ok && time.Since(entry.built) <= c.ttl {
		return entry.items, nil
	}

	result, err, _ := c.sf.Do(owner, func() (any, error) {
		// Double-check after winning the flight.
		c.mu.RLock()
		entry, ok := c.entries[owner]
		c.mu.RUnlock()

		if ok && time.Since(entry.built) <= c.ttl {
			return entry.items, nil
		}

		items, err := c.load(ctx, owner)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[owner] = &snapshotEntry{items: items, built: time.Now()}
		c.mu.Unlock()

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]Item), nil
}

// Invalidate drops the cached snapshot for an owner. Callers invoke this
// after any inventory write so the next decision sees fresh state.
func (c *SnapshotCache) Invalidate(owner string) {
	c.mu.Lock()
	delete(c.entries, owner)
	c.mu.Unlock()
}
