package caching

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

type memoryCache struct {
	entries map[string]memoryEntry
	sync.Mutex
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
	}
}

func (c *memoryCache) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.Lock()
	defer c.Unlock()

	c.entries[key] = memoryEntry{
		value:   value.([]byte),
		expires: time.Now().Add(ttl),
	}

	return nil
}

func (c *memoryCache) Fetch(ctx context.Context, key string) ([]byte, error) {
	c.Lock()
	defer c.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, nil
	}

	if time.Now().After(entry.expires) {
		delete(c.entries, key)
		return nil, nil
	}

	return entry.value, nil
}
