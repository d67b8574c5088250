// file: internal/cache/cache.go
// version: 2.0.0
// guid: 6f2c8b1a-4d97-4e35-a8c2-0d51b7e394f8

package cache

import (
	"container/list"
	"sync"
)

// Cache is a bounded generic LRU cache safe for concurrent use. It is
// always an explicit object handed to its consumer, never package-level
// state.
type Cache[T any] struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = most recently used
}

type entry[T any] struct {
	key   string
	value T
}

// DefaultCapacity bounds a cache when the caller passes a non-positive
// capacity.
const DefaultCapacity = 1024

// New creates a cache holding at most capacity entries.
func New[T any](capacity int) *Cache[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[T]{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get retrieves a value and marks it most recently used.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		var zero T
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(entry[T]).value, true
}

// Set stores a value, evicting the least recently used entry when the
// cache is full.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value = entry[T]{key: key, value: value}
		c.order.MoveToFront(el)
		return
	}
	c.items[key] = c.order.PushFront(entry[T]{key: key, value: value})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(entry[T]).key)
		}
	}
}

// Len returns the current number of entries.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge removes all entries.
func (c *Cache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}
