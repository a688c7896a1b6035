package services

import (
	"sync"
	"time"
)

// Cache là collaborator inject được, test có thể thay bằng NoopCache
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// MemoryCache: cache TTL trong process, không giới hạn số entry
// (keyspace bị chặn bởi kích thước catalog nên không cần eviction)
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]cacheEntry)}
}

func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

type NoopCache struct{}

func (NoopCache) Get(string) (interface{}, bool)              { return nil, false }
func (NoopCache) Set(string, interface{}, time.Duration)      {}
