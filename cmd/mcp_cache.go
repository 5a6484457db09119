package cmd

import (
	"sync"
	"time"

	"github.com/a11ytools/a11y-cli/internal/a11yinfo"
	"github.com/a11ytools/a11y-cli/internal/model"
)

// mcpStatusCache provides a TTL-based cache for status snapshots so that
// agents polling the status tool do not hammer the native bridge.
type mcpStatusCache struct {
	mu      sync.Mutex
	cached  model.Status
	fetched time.Time
	ttl     time.Duration
}

// newMCPStatusCache creates a new cache. A ttl of 0 disables caching.
func newMCPStatusCache(ttl time.Duration) *mcpStatusCache {
	return &mcpStatusCache{ttl: ttl}
}

// status returns the cached snapshot if within TTL, otherwise queries fresh.
func (c *mcpStatusCache) status(info *a11yinfo.Info) model.Status {
	if c.ttl == 0 {
		return collectStatus(info)
	}

	c.mu.Lock()
	if !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl {
		st := c.cached
		c.mu.Unlock()
		return st
	}
	c.mu.Unlock()

	st := collectStatus(info)

	c.mu.Lock()
	c.cached = st
	c.fetched = time.Now()
	c.mu.Unlock()

	return st
}
