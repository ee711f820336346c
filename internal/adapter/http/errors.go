package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mailcamp/internal/core/domain"
)

// writeError maps use case errors onto status codes. Only unexpected
// errors are logged; their text is not sent to the client. A stored
// document that no longer decodes is a server fault even though it wraps
// a validation error.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var (
		corrupt    *domain.DeserializationError
		validation *domain.ValidationError
		store      *domain.StoreUnavailableError
		tooLarge   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &corrupt):
		h.logger.Error(op, slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	case errors.Is(err, domain.ErrInvalidPageSize),
		errors.Is(err, domain.ErrUnsupportedFormat),
		errors.As(err, &validation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &tooLarge):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, domain.ErrCampaignNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &store):
		h.logger.Error(op, slog.Any("error", err))
		http.Error(w, "document store unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error(op, slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
