// Package cache provides a thread-safe in-memory cache for resolved
// exchange rates.
package cache

import (
	"sync"
	"time"

	"github.com/mhartwell/fxresolver/internal/domain/entity"
)

type cacheEntry struct {
	rate     entity.ExchangeRate
	storedAt time.Time
}

// ResolutionCache memoizes resolved lookups, including derived ones, per
// (source, target, date). It sits beside the rate table rather than
// inside it, so clearing the table back to its baseline stays exact.
type ResolutionCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	expiration time.Duration
}

// NewResolutionCache creates a cache with a 24h default expiration.
func NewResolutionCache() *ResolutionCache {
	return &ResolutionCache{
		entries:    make(map[string]cacheEntry),
		expiration: 24 * time.Hour,
	}
}

func cacheKey(source, target string, date time.Time) string {
	return source + "/" + target + ":" + date.Format("2006-01-02")
}

// Get returns the cached resolution for the triple, if present and fresh.
func (c *ResolutionCache) Get(source, target string, date time.Time) (entity.ExchangeRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[cacheKey(source, target, date)]
	if !ok || time.Since(e.storedAt) > c.expiration {
		return entity.ExchangeRate{}, false
	}
	return e.rate, true
}

// Put stores a resolved rate for the query date.
func (c *ResolutionCache) Put(rate entity.ExchangeRate, date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(rate.Source, rate.Target, date)] = cacheEntry{
		rate:     rate,
		storedAt: time.Now(),
	}
}

// Clear drops all cached resolutions. Called whenever the rate table
// mutates, since any derived result may have become stale.
func (c *ResolutionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}

// SetExpiration changes the cache expiration duration.
func (c *ResolutionCache) SetExpiration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expiration = d
}

// Size returns the number of cached resolutions.
func (c *ResolutionCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// CleanExpired removes stale entries and reports how many were dropped.
func (c *ResolutionCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	now := time.Now()
	for key, e := range c.entries {
		if now.Sub(e.storedAt) > c.expiration {
			delete(c.entries, key)
			count++
		}
	}
	return count
}
