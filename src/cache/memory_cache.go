package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the default in-process report cache.
type MemoryCache struct {
	c *gocache.Cache
}

func NewMemoryCache(expiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{c: gocache.New(expiration, cleanupInterval)}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	val, found := m.c.Get(key)
	if !found {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.c.SetDefault(key, value)
	return nil
}
