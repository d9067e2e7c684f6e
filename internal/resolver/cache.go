// File path: internal/resolver/cache.go
package resolver

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	key   string
	value Resolution
}

// responseCache is a small LRU keyed by the normalized utterance. Cached
// resolutions make repeated questions idempotent and cheap; the cache is
// purged whenever the knowledge base is refreshed.
type responseCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	ll       *list.List
}

func newResponseCache(size int) *responseCache {
	if size <= 0 {
		size = 512
	}
	return &responseCache{
		capacity: size,
		items:    make(map[string]*list.Element, size),
		ll:       list.New(),
	}
}

func (c *responseCache) Get(key string) (Resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.ll.MoveToFront(elem)
		if entry, ok := elem.Value.(cacheEntry); ok {
			return entry.value, true
		}
	}
	return Resolution{}, false
}

func (c *responseCache) Set(key string, value Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		elem.Value = cacheEntry{key: key, value: value}
		c.ll.MoveToFront(elem)
		return
	}
	elem := c.ll.PushFront(cacheEntry{key: key, value: value})
	c.items[key] = elem
	if c.ll.Len() > c.capacity {
		tail := c.ll.Back()
		if tail != nil {
			c.ll.Remove(tail)
			if entry, ok := tail.Value.(cacheEntry); ok {
				delete(c.items, entry.key)
			}
		}
	}
}

func (c *responseCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.ll = list.New()
}

func (c *responseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
