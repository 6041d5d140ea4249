package reqcache

import "sync"

// Cache is an explicit request-scoped cache. Callers that assemble several
// views from overlapping reference data (the admin snapshot, catalog pages)
// create one per request and pass it down instead of relying on global
// memoization; the cache dies with the request.
type Cache struct {
	mu    sync.RWMutex
	store map[string]any
}

func New() *Cache {
	return &Cache{store: make(map[string]any)}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.store[key]
	return v, ok
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = value
}

// GetOrLoad returns the cached value for key, calling load at most once per
// cache instance on a miss. A nil receiver disables caching entirely so
// callers can opt out without branching.
func GetOrLoad[T any](c *Cache, key string, load func() (T, error)) (T, error) {
	if c != nil {
		if v, ok := c.Get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}

	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	if c != nil {
		c.Set(key, v)
	}
	return v, nil
}
