package builder

import (
	"sync"
	"time"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// PageCache is an in-memory TTL cache of the ordered section list. The
// live renderer reads through it; every mutation path invalidates it so
// a structural change fully completes before the next render reads
// state.
type PageCache struct {
	mu       sync.RWMutex
	sections []page.Section
	fetched  time.Time
	ttl      time.Duration
	store    *Store
}

// NewPageCache creates a PageCache backed by the given Store.
func NewPageCache(s *Store, ttl time.Duration) *PageCache {
	return &PageCache{store: s, ttl: ttl}
}

func (c *PageCache) valid() bool {
	return c.sections != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.sections = nil
	c.mu.Unlock()
}

// List returns the cached ordered section list, reloading from the
// store when stale. It tries a read lock first; only takes a write lock
// if a reload is needed.
func (c *PageCache) List() ([]page.Section, error) {
	c.mu.RLock()
	if c.valid() {
		sections := c.sections
		c.mu.RUnlock()
		return sections, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.sections, nil
	}
	sections, err := c.store.List()
	if err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []page.Section{}
	}
	c.sections = sections
	c.fetched = time.Now()
	return sections, nil
}
