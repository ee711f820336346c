package port

import (
	"context"

	"mailcamp/internal/core/domain"
)

// CampaignQueryUseCase is the inbound port for reading stored campaigns.
type CampaignQueryUseCase interface {
	// FetchAll reconstructs every stored campaign, newest first. Documents
	// that fail to deserialize are skipped and listed in Skipped.
	FetchAll(ctx context.Context) (*FetchResult, error)
	// List filters, summarises and paginates the stored campaigns. The
	// summary covers the filtered set, not the whole store.
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	// Get returns one campaign by its campaign id.
	Get(ctx context.Context, campaignID string) (*domain.CampaignData, error)
	// Refresh drops the read cache.
	Refresh(ctx context.Context) error
}

// FetchResult is the reconstructed collection.
type FetchResult struct {
	Campaigns []domain.CampaignData
	Skipped   []SkippedDocument
}

// SkippedDocument is a stored document that could not be reconstructed.
type SkippedDocument struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// ListQuery selects a page of campaigns. An empty Statuses set and an
// empty Search disable their filters.
type ListQuery struct {
	Statuses []domain.Status
	Search   string
	Page     int
	PageSize int
}

// ListResult is one page of the filtered campaigns plus the summary of
// the whole filtered set.
type ListResult struct {
	Page     domain.Page[domain.CampaignData]
	Summary  domain.Summary
	Statuses []domain.Status
	Skipped  []SkippedDocument
}
