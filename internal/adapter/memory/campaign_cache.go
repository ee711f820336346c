package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"mailcamp/internal/core/port"
)

// CampaignCache is an in-process port.CampaignCache used when Redis is not
// configured. A non-positive TTL disables caching.
type CampaignCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	docs    []port.StoredDocument
	expires time.Time
	filled  bool
	gen     uint64
}

// NewCampaignCache returns an empty cache whose snapshots live for ttl.
func NewCampaignCache(ttl time.Duration) *CampaignCache {
	return &CampaignCache{ttl: ttl, now: time.Now}
}

// Load returns the snapshot if it has not expired.
func (c *CampaignCache) Load(_ context.Context) (port.Snapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.filled || !c.now().Before(c.expires) {
		c.docs, c.filled = nil, false
		return port.Snapshot{Generation: c.gen}, false, nil
	}
	return port.Snapshot{Docs: slices.Clone(c.docs), Generation: c.gen}, true, nil
}

// Store replaces the snapshot and restarts its TTL. Snapshots of an older
// generation are dropped.
func (c *CampaignCache) Store(_ context.Context, snap port.Snapshot) error {
	if c.ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if snap.Generation != c.gen {
		return nil
	}
	c.docs = slices.Clone(snap.Docs)
	c.expires = c.now().Add(c.ttl)
	c.filled = true
	return nil
}

// Invalidate drops the snapshot and starts a new generation.
func (c *CampaignCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs, c.filled = nil, false
	c.gen++
	return nil
}
