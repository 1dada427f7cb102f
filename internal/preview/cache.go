package preview

import (
	"container/list"
	"sync"
)

// defaultCacheCapacity bounds how many previews stay resident. Entries
// accumulate for the lifetime of the process otherwise, and a single
// highlighted preview of a large file can hold megabytes of styled text.
const defaultCacheCapacity = 512

// Cache is a bounded, concurrency-safe map from entry identifier to a
// shared immutable Preview, with least-recently-used eviction. Keys are
// compared by exact string equality, no normalization.
//
// Get and Insert are individually atomic; GetOrReserve exists so the
// orchestrator can make its check-then-act sequence (lookup plus Loading
// insert) a single atomic step. No I/O or highlighting ever happens while
// the lock is held.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front is most recently used
}

type cacheEntry struct {
	key     string
	preview *Preview
}

// NewCache returns a cache bounded to capacity entries. Zero or negative
// capacities fall back to the default.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get returns the preview stored for key, if any. A hit marks the entry as
// recently used.
func (c *Cache) Get(key string) (*Preview, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).preview, true
}

// Insert stores preview under key, replacing any prior value. The latest
// insert wins.
func (c *Cache) Insert(key string, p *Preview) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insertLocked(key, p)
}

// GetOrReserve returns the existing preview for key when present.
// Otherwise it stores placeholder under key and reports reserved=true.
// Lookup and insert happen under one lock acquisition, so two concurrent
// callers for a cold key cannot both observe a miss.
func (c *Cache) GetOrReserve(key string, placeholder *Preview) (p *Preview, reserved bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*cacheEntry).preview, false
	}
	c.insertLocked(key, placeholder)
	return placeholder, true
}

// Len returns the number of cached previews.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) insertLocked(key string, p *Preview) {
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).preview = p
		c.order.MoveToFront(elem)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, preview: p})

	for len(c.entries) > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}
