// Package cache provides a generic soft-limit LRU cache with an eviction
// callback.
//
// The cache is used to hold per-mesh GPU bindings keyed by mesh identity.
// Entries whose key is never requested again (a mesh that was reallocated
// and got a new identity) drift to the tail of the LRU list and are evicted
// once the soft limit is exceeded; the callback releases their resources.
//
//	c := cache.New[uint64, *Binding](64, func(_ uint64, b *Binding) { b.Release() })
//	b, ok := c.Get(id)
//	if !ok {
//		b, _ = c.SetIfAbsent(id, newBinding(id))
//	}
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
// The eviction callback runs without the cache lock held.
package cache
