package fetcher

import (
	"sync"

	"github.com/halbind/halbind/resource"
)

// Cache memoizes flattened resources by their exact request URL, credential
// parameters included. It lives for the whole hydration process and has no
// eviction; volume is bounded by the links the visited resources carry.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]resource.FlatResource
}

func NewCache() *Cache {
	return &Cache{entries: map[string]resource.FlatResource{}}
}

func (c *Cache) Get(url string) (resource.FlatResource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[url]
	return entry, ok
}

func (c *Cache) Put(url string, flat resource.FlatResource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = flat
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
