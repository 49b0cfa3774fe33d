// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package cache

import (
	"sync"
	"time"
)

// entry is a node in the LRU's doubly-linked list.
type entry[K comparable, V any] struct {
	key       K
	value     V
	prev      *entry[K, V]
	next      *entry[K, V]
	expiresAt time.Time // zero means no expiry
}

// LRU is a thread-safe least recently used cache with optional TTL.
//
// Get, Add and Remove are O(1): a hashmap gives lookup and a doubly-linked
// list with sentinel nodes keeps recency order (head.next is the most
// recently used, tail.prev the least).
type LRU[K comparable, V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration // 0 disables expiry
	now      func() time.Time

	items map[K]*entry[K, V]
	head  *entry[K, V]
	tail  *entry[K, V]

	hits      int64
	misses    int64
	evictions int64
}

// NewLRU creates a cache holding at most capacity entries.
// A ttl of 0 keeps entries until they are evicted.
func NewLRU[K comparable, V any](capacity int, ttl time.Duration) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 10000
	}
	if ttl < 0 {
		ttl = 0
	}

	c := &LRU[K, V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[K]*entry[K, V], capacity),
		head:     &entry[K, V]{},
		tail:     &entry[K, V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the value for key and moves it to the front.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		if c.expired(e) {
			c.removeEntry(e)
		} else {
			c.moveToFront(e)
			c.hits++
			return e.value, true
		}
	}

	c.misses++
	var zero V
	return zero, false
}

// Add inserts or updates key. The least recently used entry is evicted
// when the cache is over capacity.
func (c *LRU[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry[K, V]{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(e)
	c.items[key] = e

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// GetOrCompute returns the cached value for key, computing and storing it
// with fn on a miss. fn runs without the lock held.
func (c *LRU[K, V]) GetOrCompute(key K, fn func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn()
	c.Add(key, v)
	return v
}

// Remove deletes key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
		return true
	}
	return false
}

// Len returns the current number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*entry[K, V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
}

// Stats returns hit, miss and eviction counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Evictions: c.evictions, Size: len(c.items)}
}

// Internal methods (must be called with lock held)

func (c *LRU[K, V]) expired(e *entry[K, V]) bool {
	return !e.expiresAt.IsZero() && c.now().After(e.expiresAt)
}

func (c *LRU[K, V]) addToFront(e *entry[K, V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRU[K, V]) moveToFront(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *LRU[K, V]) removeEntry(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}

func (c *LRU[K, V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.evictions++
}
