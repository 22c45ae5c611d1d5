package data

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"funding-sim/internal/simulation"
)

// CacheEntry is a finished simulation kept for later retrieval.
type CacheEntry struct {
	Result    *simulation.Result
	ExpiresAt time.Time
}

// ResultCache keeps simulation results in memory under generated run IDs so
// that large sample sets can be fetched separately from the summary.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResultCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores res and returns its run ID.
func (c *ResultCache) Put(res *simulation.Result) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[id] = &CacheEntry{
		Result:    res,
		ExpiresAt: c.now().Add(c.ttl),
	}
	return id
}

// Get retrieves a cached result if available and not expired
func (c *ResultCache) Get(id string) (*simulation.Result, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists {
		return nil, false
	}
	if c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*CacheEntry)
}

// Evict drops expired entries and reports how many were removed.
func (c *ResultCache) Evict() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for id, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, id)
			n++
		}
	}
	return n
}

// RunCleanup evicts expired entries every interval until ctx is done.
func (c *ResultCache) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Evict(); n > 0 {
				log.Debugf("evicted %d expired results", n)
			}
		}
	}
}
