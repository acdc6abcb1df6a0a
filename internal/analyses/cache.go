package analyses

import (
	"container/list"
	"sync"
	"time"
)

// ResultCache keeps fully rendered completed responses so repeated polls are
// served byte-identical without touching the repo. Least recently used
// entries are evicted at capacity; entries expire after ttl.
type ResultCache struct {
	mu       sync.Mutex
	maxSize  int
	ttl      time.Duration
	order    *list.List
	entries  map[string]*list.Element
	now      func() time.Time
}

type cacheEntry struct {
	key        string
	body       []byte
	insertedAt time.Time
}

// NewResultCache constructs a cache with the given capacity and TTL. A nil
// now uses the wall clock.
func NewResultCache(maxSize int, ttl time.Duration, now func() time.Time) *ResultCache {
	if now == nil {
		now = time.Now
	}
	return &ResultCache{
		maxSize: maxSize,
		ttl:     ttl,
		order:   list.New(),
		entries: make(map[string]*list.Element),
		now:     now,
	}
}

// Get returns the cached body for key and marks it recently used. Expired
// entries are removed and reported as a miss.
func (c *ResultCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if c.expired(entry) {
		c.remove(elem)
		return nil, false
	}
	c.order.MoveToFront(elem)
	return entry.body, true
}

// Set stores body under key, evicting the least recently used entry when the
// cache is full. Setting an existing key refreshes its body and age.
func (c *ResultCache) Set(key string, body []byte) {
	if c.maxSize <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.body = body
		entry.insertedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	for len(c.entries) >= c.maxSize {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.remove(oldest)
	}

	elem := c.order.PushFront(&cacheEntry{key: key, body: body, insertedAt: c.now()})
	c.entries[key] = elem
}

// Sweep removes every expired entry and returns how many were dropped.
func (c *ResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if c.expired(elem.Value.(*cacheEntry)) {
			c.remove(elem)
			removed++
		}
		elem = prev
	}
	return removed
}

// Len reports the current entry count.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ResultCache) expired(entry *cacheEntry) bool {
	return c.ttl > 0 && c.now().Sub(entry.insertedAt) >= c.ttl
}

func (c *ResultCache) remove(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	delete(c.entries, entry.key)
	c.order.Remove(elem)
}
