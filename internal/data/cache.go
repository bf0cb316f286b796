package data

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// DefaultCacheTTL is used when NewResponseCache is given a non-positive TTL.
const DefaultCacheTTL = time.Hour

// CacheEntry is one cached response body.
type CacheEntry struct {
	Body      []byte
	ExpiresAt time.Time
}

// ResponseCache provides in-memory caching for Sleeper API responses.
//
// This cache is for LOCAL DEVELOPMENT ONLY. It keeps repeated page reloads from
// hammering the public API while iterating on the UI. The server never builds one
// when API_ENV=production.
type ResponseCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewResponseCache creates an empty cache whose entries live for ttl.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResponseCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get retrieves a cached body if available and not expired
func (c *ResponseCache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Body, true
}

// Set stores a body in the cache. Expired entries are swept on the way in.
func (c *ResponseCache) Set(key string, body []byte) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, k)
		}
	}
	c.store[key] = &CacheEntry{
		Body:      body,
		ExpiresAt: now.Add(c.ttl),
	}
}

// Len returns the number of entries currently held, expired or not.
func (c *ResponseCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// GenerateCacheKey creates a cache key from the upstream host and request path.
func GenerateCacheKey(baseURL, path string) string {
	hash := sha256.Sum256([]byte(baseURL + "|" + path))
	return hex.EncodeToString(hash[:])
}
