package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mailcamp/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes ingestion and query use
// cases on a chi.Router.
type Handler struct {
	ingest    port.IngestUseCase
	query     port.CampaignQueryUseCase
	logger    *slog.Logger
	maxUpload int64
	router    chi.Router
}

// NewHandler registers every route. metrics is mounted on /metrics when
// non-nil; maxUpload caps upload request bodies.
func NewHandler(
	ingest port.IngestUseCase,
	query port.CampaignQueryUseCase,
	metrics http.Handler,
	maxUpload int64,
	logger *slog.Logger,
) *Handler {
	h := &Handler{ingest: ingest, query: query, logger: logger, maxUpload: maxUpload}
	r := chi.NewRouter()

	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/upload", h.handleUpload)
		r.Post("/refresh", h.handleRefresh)
		r.Get("/{campaignID}", h.handleGet)
	})
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
