package gfx

import "github.com/gogpu/gfx/internal/cache"

// BindingCache holds per-mesh renderer state, such as bind groups, keyed
// by mesh identity.
//
// A mesh whose buffers were reallocated has a new ID and therefore misses;
// its old entry is never returned again and ages out once the cache passes
// its soft limit, or immediately via Forget. Every value leaving the cache
// is passed to the release function.
//
// BindingCache is safe for concurrent use.
type BindingCache[T any] struct {
	entries *cache.Cache[uint64, T]
	release func(T)
}

// CacheStats reports BindingCache usage.
type CacheStats = cache.Stats

// NewBindingCache creates a cache holding about softLimit entries. release
// may be nil.
func NewBindingCache[T any](softLimit int, release func(T)) *BindingCache[T] {
	var onEvict func(uint64, T)
	if release != nil {
		onEvict = func(_ uint64, v T) { release(v) }
	}
	return &BindingCache[T]{entries: cache.New(softLimit, onEvict), release: release}
}

// Get returns the state for m, calling build on a miss.
//
// build runs without holding the cache lock, so a slow build does not
// stall lookups of other meshes. Concurrent misses on the same mesh may
// each build; the first result stored wins and the others are released.
func (c *BindingCache[T]) Get(m *Mesh, build func(*Mesh) (T, error)) (T, error) {
	id := m.ID()
	if v, ok := c.entries.Get(id); ok {
		return v, nil
	}
	v, err := build(m)
	if err != nil {
		var zero T
		return zero, err
	}
	cur, loaded := c.entries.SetIfAbsent(id, v)
	if loaded && c.release != nil {
		c.release(v)
	}
	return cur, nil
}

// Forget releases the entry for a mesh ID, reporting whether one existed.
func (c *BindingCache[T]) Forget(id uint64) bool {
	return c.entries.Delete(id)
}

// Len returns the number of cached entries.
func (c *BindingCache[T]) Len() int { return c.entries.Len() }

// Clear releases every entry.
func (c *BindingCache[T]) Clear() { c.entries.Clear() }

// Stats returns hit/miss statistics.
func (c *BindingCache[T]) Stats() CacheStats { return c.entries.Stats() }
