// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/cinemetrics/internal/metrics"
)

// DefaultCleanupInterval is how often Serve sweeps expired entries.
const DefaultCleanupInterval = time.Minute

// entry is a node in the recency list. head.next is the most recently used.
type entry struct {
	key       string
	value     interface{}
	expiresAt time.Time
	prev      *entry
	next      *entry
}

// Cache is a thread-safe in-memory cache bounded by both TTL and capacity.
// Expired entries are dropped lazily on Get and in bulk by Serve; when full,
// the least recently used entry is evicted.
type Cache struct {
	name     string
	ttl      time.Duration
	capacity int

	mu    sync.Mutex
	items map[string]*entry
	head  *entry
	tail  *entry
	stats Stats

	now func() time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache. name labels the Prometheus series (cache_type).
// A non-positive capacity means unbounded.
//
//	c := cache.New("query", 5*time.Minute, 256)
//	c.Set(key, result)
//	if v, ok := c.Get(key); ok {
//	    return v.(dataset.Result)
//	}
func New(name string, ttl time.Duration, capacity int) *Cache {
	c := &Cache{
		name:     name,
		ttl:      ttl,
		capacity: capacity,
		items:    make(map[string]*entry),
		head:     &entry{},
		tail:     &entry{},
		now:      time.Now,
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	c.stats.LastCleanup = c.now()
	return c
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	e, ok := c.items[key]
	expired := ok && c.now().After(e.expiresAt)
	if expired {
		c.remove(e)
		c.stats.Evictions++
		c.updateSize()
		ok = false
	}
	if ok {
		c.moveToFront(e)
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.mu.Unlock()

	metrics.RecordCacheLookup(c.name, ok)
	if expired {
		metrics.CacheEvictions.WithLabelValues(c.name).Inc()
	}
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(e)
	c.items[key] = e

	var evicted int
	for c.capacity > 0 && len(c.items) > c.capacity {
		c.remove(c.tail.prev)
		evicted++
	}
	c.stats.Evictions += int64(evicted)
	c.updateSize()
	if evicted > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(evicted))
	}
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GetStats returns a copy of the counters.
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns hits as a percentage of lookups.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Cleanup drops every expired entry and returns how many were removed.
func (c *Cache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for _, e := range c.items {
		if now.After(e.expiresAt) {
			c.remove(e)
			removed++
		}
	}
	c.stats.Evictions += int64(removed)
	c.stats.LastCleanup = now
	c.updateSize()
	if removed > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(removed))
	}
	return removed
}

// Serve runs Cleanup every DefaultCleanupInterval until ctx is canceled.
// It implements suture.Service so the sweep runs under the supervisor tree.
func (c *Cache) Serve(ctx context.Context) error {
	ticker := time.NewTicker(DefaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Cleanup()
		}
	}
}

// String names the service in supervisor logs.
func (c *Cache) String() string {
	return "cache-janitor:" + c.name
}

// updateSize must be called with mu held.
func (c *Cache) updateSize() {
	c.stats.TotalKeys = int64(len(c.items))
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.items)))
}

func (c *Cache) addToFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache) moveToFront(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *Cache) remove(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}
