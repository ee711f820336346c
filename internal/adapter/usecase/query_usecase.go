package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
	"mailcamp/internal/metrics"
)

// CampaignQueryUseCase reads campaigns back from the store through the
// snapshot cache.
type CampaignQueryUseCase struct {
	repo    port.CampaignRepository
	cache   port.CampaignCache
	metrics *metrics.Recorder
	log     *slog.Logger
}

// NewCampaignQueryUseCase wires the query side. rec may be nil.
func NewCampaignQueryUseCase(repo port.CampaignRepository, cache port.CampaignCache, rec *metrics.Recorder, log *slog.Logger) *CampaignQueryUseCase {
	return &CampaignQueryUseCase{repo: repo, cache: cache, metrics: rec, log: log}
}

// FetchAll reconstructs every stored campaign, newest first.
func (u *CampaignQueryUseCase) FetchAll(ctx context.Context) (*port.FetchResult, error) {
	docs, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	res := &port.FetchResult{Campaigns: make([]domain.CampaignData, 0, len(docs))}
	for _, d := range docs {
		c, err := domain.BuildFromDocument(d.Document)
		if err != nil {
			res.Skipped = append(res.Skipped, port.SkippedDocument{ID: d.ID, Reason: err.Error()})
			u.log.Warn("skipping stored document", slog.String("id", d.ID), slog.String("reason", err.Error()))
			continue
		}
		res.Campaigns = append(res.Campaigns, c)
	}
	u.metrics.SkippedDocuments(len(res.Skipped))
	return res, nil
}

// List validates the page size before touching the store.
func (u *CampaignQueryUseCase) List(ctx context.Context, q port.ListQuery) (*port.ListResult, error) {
	if q.PageSize <= 0 {
		return nil, domain.ErrInvalidPageSize
	}
	all, err := u.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := domain.FilterCampaigns(all.Campaigns, q.Statuses, q.Search)
	page, err := domain.Paginate(filtered, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	return &port.ListResult{
		Page:     page,
		Summary:  domain.Summarize(filtered),
		Statuses: domain.Statuses(all.Campaigns),
		Skipped:  all.Skipped,
	}, nil
}

// Get reads one campaign straight from the store.
func (u *CampaignQueryUseCase) Get(ctx context.Context, campaignID string) (*domain.CampaignData, error) {
	doc, err := u.repo.FindByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrCampaignNotFound, campaignID)
	}
	c, err := domain.BuildFromDocument(doc.Document)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Refresh drops the cached snapshot so the next read scans the store.
func (u *CampaignQueryUseCase) Refresh(ctx context.Context) error {
	if err := u.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return nil
}

// snapshot serves the collection from the cache when possible. Cache
// failures degrade to a store scan. The scan is cached only under the
// generation read before it, so a write that lands during the scan keeps
// its result out of the cache.
func (u *CampaignQueryUseCase) snapshot(ctx context.Context) ([]port.StoredDocument, error) {
	snap, ok, err := u.cache.Load(ctx)
	cacheable := err == nil
	switch {
	case err != nil:
		u.metrics.CacheLookup("error")
		u.log.Warn("cache load failed", slog.String("error", err.Error()))
	case ok:
		u.metrics.CacheLookup("hit")
		return snap.Docs, nil
	default:
		u.metrics.CacheLookup("miss")
	}

	docs, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if !cacheable {
		return docs, nil
	}
	if err = u.cache.Store(ctx, port.Snapshot{Docs: docs, Generation: snap.Generation}); err != nil {
		u.log.Warn("cache store failed", slog.String("error", err.Error()))
	}
	return docs, nil
}
