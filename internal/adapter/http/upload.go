package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mailcamp/internal/core/domain"
)

// handleUpload ingests a CSV or XLSX file sent as the multipart field
// "file". The response is the ingestion report; per-row failures do not
// change the status code.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, "parse upload", err)
			return
		}
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	report, err := h.ingest.IngestFile(r.Context(), header.Filename, file)
	if err != nil {
		h.writeError(w, "ingest file error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// handleCreate ingests a JSON array of nested campaign documents.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	docs, err := decodeDocuments(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, "decode documents", err)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	report, err := h.ingest.IngestDocuments(r.Context(), docs)
	if err != nil {
		h.writeError(w, "ingest documents error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// decodeDocuments keeps numbers as json.Number so integer counters survive
// without a float round trip. A null item decodes to a nil Document and is
// rejected later as that item's own failure.
func decodeDocuments(r *http.Request) ([]domain.Document, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var docs []domain.Document
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("invalid JSON: expected an array of campaign documents: %w", err)
	}
	return docs, nil
}
