package redis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailcamp/internal/config/configs"
	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
)

func TestSnapshotEncoding(t *testing.T) {
	docs := []port.StoredDocument{
		{ID: "7", Document: domain.Document{"campaign_id": "C7", "cost_details": domain.Document{"overall_budget": 1200.5}}},
		{ID: "3", Document: domain.Document{"campaign_id": "C3", "strategy_cells": []any{}}},
	}
	raw, err := json.Marshal(docs)
	require.NoError(t, err)

	got, err := decodeSnapshot(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "C7", got[0].Document.CampaignID())
	budget := got[0].Document["cost_details"].(map[string]any)["overall_budget"]
	assert.Equal(t, json.Number("1200.5"), budget)
	assert.Equal(t, "3", got[1].ID)
}

func TestSnapshotDecodingRejectsGarbage(t *testing.T) {
	_, err := decodeSnapshot([]byte(`{"not":"a list"}`))
	require.Error(t, err)

	_, err = decodeSnapshot([]byte(`[{"id":"1","document":"text"}]`))
	require.Error(t, err)
}

func TestStoreWithoutTTLIsNoop(t *testing.T) {
	cache := NewCampaignCache(nil, "campaigns:snapshot", 0*time.Second)
	assert.NoError(t, cache.Store(t.Context(), port.Snapshot{Docs: []port.StoredDocument{{ID: "1"}}}))
}

func newTestCache(t *testing.T, ttl time.Duration) (*CampaignCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb, err := NewClient(t.Context(), configs.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCampaignCache(rdb, "campaigns:snapshot", ttl), mr
}

func TestCampaignCacheRoundTrip(t *testing.T) {
	ctx := t.Context()
	cache, mr := newTestCache(t, time.Minute)

	miss, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, miss.Generation)

	docs := []port.StoredDocument{{ID: "1", Document: domain.Document{"campaign_id": "C1"}}}
	require.NoError(t, cache.Store(ctx, port.Snapshot{Docs: docs, Generation: miss.Generation}))
	assert.Equal(t, time.Minute, mr.TTL("campaigns:snapshot"))

	hit, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, hit.Docs, 1)
	assert.Equal(t, "C1", hit.Docs[0].Document.CampaignID())

	require.NoError(t, cache.Invalidate(ctx))
	after, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uint64(1), after.Generation)
}

func TestCampaignCacheDropsSnapshotOfOlderGeneration(t *testing.T) {
	ctx := t.Context()
	cache, mr := newTestCache(t, time.Minute)

	before, _, err := cache.Load(ctx)
	require.NoError(t, err)

	// An insert invalidates the cache while the reader scans the store.
	require.NoError(t, cache.Invalidate(ctx))
	require.NoError(t, cache.Store(ctx, port.Snapshot{Docs: []port.StoredDocument{{ID: "1"}}, Generation: before.Generation}))

	assert.False(t, mr.Exists("campaigns:snapshot"))
	_, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseGeneration(t *testing.T) {
	n, err := parseGeneration(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = parseGeneration("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n)
	_, err = parseGeneration("x")
	assert.Error(t, err)
}
