package cache

import "sync"

// Cache is a generic thread-safe LRU cache with a soft limit.
// When an insertion takes the cache over softLimit, the least recently used
// entries are evicted until a quarter of the capacity is free again.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[K, V]
	order     *lruList[K]
	softLimit int
	onEvict   func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// cacheEntry holds a cached value with its position in the LRU list.
type cacheEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

type evicted[K comparable, V any] struct {
	key   K
	value V
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited. onEvict, if not nil, is called for every
// value leaving the cache: evicted, replaced, deleted or cleared.
func New[K comparable, V any](softLimit int, onEvict func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[K, V]),
		order:     newLRUList[K](),
		softLimit: softLimit,
		onEvict:   onEvict,
	}
}

// Get retrieves a value from the cache and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(entry.node)
	return entry.value, true
}

// Set stores a value in the cache, replacing any previous value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	out := c.insertLocked(key, value)
	c.mu.Unlock()
	c.release(out)
}

// SetIfAbsent stores value unless key is already present. It returns the
// value held for key afterwards and whether that was an existing entry, in
// which case value is not stored and not passed to onEvict.
func (c *Cache[K, V]) SetIfAbsent(key K, value V) (V, bool) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		c.order.MoveToFront(entry.node)
		c.mu.Unlock()
		return entry.value, true
	}
	out := c.insertLocked(key, value)
	c.mu.Unlock()

	c.release(out)
	return value, false
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok {
		c.order.Remove(entry.node)
		delete(c.entries, key)
	}
	c.mu.Unlock()

	if ok {
		c.release([]evicted[K, V]{{key, entry.value}})
	}
	return ok
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	out := make([]evicted[K, V], 0, len(c.entries))
	for key, entry := range c.entries {
		out = append(out, evicted[K, V]{key, entry.value})
	}
	c.entries = make(map[K]*cacheEntry[K, V])
	c.order.Clear()
	c.mu.Unlock()

	c.release(out)
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.softLimit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// insertLocked stores key and returns the values that left the cache.
// Caller must hold c.mu.
func (c *Cache[K, V]) insertLocked(key K, value V) []evicted[K, V] {
	var out []evicted[K, V]
	if entry, ok := c.entries[key]; ok {
		out = append(out, evicted[K, V]{key, entry.value})
		entry.value = value
		c.order.MoveToFront(entry.node)
		return out
	}

	c.entries[key] = &cacheEntry[K, V]{value: value, node: c.order.PushFront(key)}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		out = c.evictOldestLocked(out)
	}
	return out
}

// evictOldestLocked removes least recently used entries until the cache
// holds at most three quarters of softLimit (at least one entry).
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldestLocked(out []evicted[K, V]) []evicted[K, V] {
	target := max(c.softLimit*3/4, 1)
	for len(c.entries) > target {
		key, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		out = append(out, evicted[K, V]{key, c.entries[key].value})
		delete(c.entries, key)
		c.evictions++
	}
	return out
}

func (c *Cache[K, V]) release(out []evicted[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range out {
		c.onEvict(e.key, e.value)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit.
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before any lookup.
	HitRate float64
	// Evictions is the number of entries dropped for exceeding the soft limit.
	Evictions uint64
}
