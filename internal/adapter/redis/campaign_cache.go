package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"mailcamp/internal/config/configs"
	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
)

// NewClient connects to Redis and verifies the connection with a ping. The
// caller owns the returned client and must close it.
func NewClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// CampaignCache implements port.CampaignCache with two Redis keys: key
// holds the JSON-encoded snapshot and expires after the TTL, key+":gen"
// counts invalidations. Store runs under WATCH on the counter, so a
// snapshot read before an invalidation is never written back.
type CampaignCache struct {
	rdb    *goredis.Client
	key    string
	genKey string
	ttl    time.Duration
}

// NewCampaignCache returns a cache stored under key.
func NewCampaignCache(rdb *goredis.Client, key string, ttl time.Duration) *CampaignCache {
	return &CampaignCache{rdb: rdb, key: key, genKey: key + ":gen", ttl: ttl}
}

// Load reads the snapshot and the generation in one round trip. A missing
// snapshot is a miss, not an error.
func (c *CampaignCache) Load(ctx context.Context) (port.Snapshot, bool, error) {
	vals, err := c.rdb.MGet(ctx, c.key, c.genKey).Result()
	if err != nil {
		return port.Snapshot{}, false, fmt.Errorf("redis mget %s: %w", c.key, err)
	}
	gen, err := parseGeneration(vals[1])
	if err != nil {
		return port.Snapshot{}, false, err
	}
	raw, ok := vals[0].(string)
	if !ok {
		return port.Snapshot{Generation: gen}, false, nil
	}
	docs, err := decodeSnapshot([]byte(raw))
	if err != nil {
		return port.Snapshot{Generation: gen}, false, err
	}
	return port.Snapshot{Docs: docs, Generation: gen}, true, nil
}

// Store writes the snapshot with the configured TTL if the generation is
// still the one snap was loaded under.
func (c *CampaignCache) Store(ctx context.Context, snap port.Snapshot) error {
	if c.ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(snap.Docs)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	err = c.rdb.Watch(ctx, func(tx *goredis.Tx) error {
		cur, err := tx.Get(ctx, c.genKey).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		gen, err := parseGeneration(cur)
		if err != nil {
			return err
		}
		if gen != snap.Generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p goredis.Pipeliner) error {
			p.Set(ctx, c.key, raw, c.ttl)
			return nil
		})
		return err
	}, c.genKey)
	if errors.Is(err, goredis.TxFailedErr) {
		// Invalidated while storing.
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis set %s: %w", c.key, err)
	}
	return nil
}

// Invalidate advances the generation and deletes the snapshot atomically.
func (c *CampaignCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Incr(ctx, c.genKey)
		p.Del(ctx, c.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate %s: %w", c.key, err)
	}
	return nil
}

// parseGeneration reads the counter as returned by GET or MGET; an absent
// counter is generation zero.
func parseGeneration(v any) (uint64, error) {
	switch s := v.(type) {
	case nil:
		return 0, nil
	case string:
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("redis generation %q: %w", s, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("redis generation: unexpected %T", v)
	}
}

func decodeSnapshot(raw []byte) ([]port.StoredDocument, error) {
	var entries []struct {
		ID       string          `json:"id"`
		Document json.RawMessage `json:"document"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	docs := make([]port.StoredDocument, 0, len(entries))
	for _, e := range entries {
		doc, err := domain.DecodeDocument(e.Document)
		if err != nil {
			return nil, fmt.Errorf("decode snapshot entry %s: %w", e.ID, err)
		}
		docs = append(docs, port.StoredDocument{ID: e.ID, Document: doc})
	}
	return docs, nil
}
