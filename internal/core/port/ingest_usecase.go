package port

import (
	"context"
	"io"

	"mailcamp/internal/core/domain"
)

// IngestUseCase is the inbound port for storing new campaigns. Both
// methods have per-item atomicity: an item is either stored whole or
// reported in Failures, and one bad item never stops the rest. A store
// failure aborts the call with a *domain.StoreUnavailableError.
type IngestUseCase interface {
	// IngestFile parses a CSV or XLSX upload, builds one campaign per data
	// row and stores the ones that build.
	IngestFile(ctx context.Context, name string, content io.Reader) (*IngestionReport, error)
	// IngestDocuments stores already nested campaign documents.
	IngestDocuments(ctx context.Context, docs []domain.Document) (*IngestionReport, error)
}

// IngestionReport summarises one ingestion call. Indexes are zero-based
// positions of the data row (or document) in the upload.
type IngestionReport struct {
	BatchID       string        `json:"batchId"`
	InsertedCount int           `json:"insertedCount"`
	InsertedIDs   []string      `json:"insertedIds"`
	Failures      []ItemFailure `json:"failures"`
	Warnings      []ItemWarning `json:"warnings,omitempty"`
}

// ItemFailure names an item that was not stored and why.
type ItemFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ItemWarning is a data-quality note on an item that was stored anyway.
type ItemWarning struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}
