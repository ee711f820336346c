package port

import (
	"context"

	"mailcamp/internal/core/domain"
)

// CampaignRepository is the outbound port to the document store. It holds
// one document per campaign. Every method reports transport failures as
// *domain.StoreUnavailableError.
type CampaignRepository interface {
	// InsertMany stores docs in order and returns one outcome per document.
	// A document whose campaign id is already stored is skipped and marked
	// as a duplicate; the remaining documents are still inserted.
	InsertMany(ctx context.Context, docs []domain.Document) ([]InsertOutcome, error)
	// FindAll returns every stored document, newest first.
	FindAll(ctx context.Context) ([]StoredDocument, error)
	// FindByCampaignID returns the document of one campaign, or nil when no
	// document carries that id.
	FindByCampaignID(ctx context.Context, campaignID string) (*StoredDocument, error)
	// Count returns the number of stored documents.
	Count(ctx context.Context) (int64, error)
}

// StoredDocument is a document together with its store-assigned id.
type StoredDocument struct {
	ID       string          `json:"id"`
	Document domain.Document `json:"document"`
}

// InsertOutcome reports what happened to one document of an InsertMany
// call. ID is empty for duplicates.
type InsertOutcome struct {
	ID        string
	Duplicate bool
}
