package folio

import (
	"sync"
	"time"
)

// PageCache holds the rendered portfolio page for a TTL.
type PageCache struct {
	mu      sync.RWMutex
	page    []byte
	fetched time.Time
	ttl     time.Duration
	render  func() ([]byte, error)
}

// NewPageCache creates a PageCache that fills itself with render.
func NewPageCache(ttl time.Duration, render func() ([]byte, error)) *PageCache {
	return &PageCache{ttl: ttl, render: render}
}

func (c *PageCache) valid() bool {
	return c.page != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh render.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.page = nil
	c.mu.Unlock()
}

// Get returns the cached page, rendering it first when stale.
// It tries a read lock first; only takes a write lock if a render is needed.
func (c *PageCache) Get() ([]byte, error) {
	c.mu.RLock()
	if c.valid() {
		page := c.page
		c.mu.RUnlock()
		return page, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.page, nil
	}
	page, err := c.render()
	if err != nil {
		return nil, err
	}
	c.page = page
	c.fetched = time.Now()
	return page, nil
}
