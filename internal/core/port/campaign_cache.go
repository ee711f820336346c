package port

import "context"

// CampaignCache holds a time-bounded snapshot of the full collection so
// repeated reads skip the store. Invalidation is total: after a write the
// whole snapshot is dropped and the cache generation moves on, so a
// snapshot read from the store before the write can no longer be stored.
type CampaignCache interface {
	// Load returns the cached snapshot and whether one was present. On a
	// miss the returned Snapshot still carries the current Generation,
	// which the caller hands back to Store.
	Load(ctx context.Context) (Snapshot, bool, error)
	// Store saves snap unless the cache was invalidated after the Load
	// that produced snap.Generation; a stale snapshot is silently dropped.
	Store(ctx context.Context, snap Snapshot) error
	// Invalidate drops the snapshot and advances the generation.
	Invalidate(ctx context.Context) error
}

// Snapshot is the whole stored collection as of one cache generation.
type Snapshot struct {
	Docs       []StoredDocument
	Generation uint64
}
