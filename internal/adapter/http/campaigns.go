package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
)

const defaultPageSize = 20

type listResponse struct {
	Campaigns  []domain.CampaignRow   `json:"campaigns"`
	Summary    summaryResponse        `json:"summary"`
	Pagination paginationResponse     `json:"pagination"`
	Statuses   []domain.Status        `json:"statuses"`
	Skipped    []port.SkippedDocument `json:"skipped"`
}

type summaryResponse struct {
	Total         int     `json:"total"`
	ActiveCount   int     `json:"active_count"`
	AverageROIPct float64 `json:"average_roi_pct"`
	TotalBudget   float64 `json:"total_budget"`
}

type paginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

type detailResponse struct {
	Campaign domain.Document `json:"campaign"`
	Warnings []string        `json:"warnings"`
}

// handleList returns one page of campaigns. Query parameters: status
// (repeatable or comma separated), q, page and page_size.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := h.query.List(r.Context(), q)
	if err != nil {
		h.writeError(w, "list campaigns error", err)
		return
	}

	rows := make([]domain.CampaignRow, 0, len(res.Page.Items))
	for _, c := range res.Page.Items {
		rows = append(rows, domain.Flatten(c))
	}
	statuses := res.Statuses
	if statuses == nil {
		statuses = []domain.Status{}
	}
	skipped := res.Skipped
	if skipped == nil {
		skipped = []port.SkippedDocument{}
	}
	h.writeJSON(w, http.StatusOK, listResponse{
		Campaigns: rows,
		Summary: summaryResponse{
			Total:         res.Summary.Total,
			ActiveCount:   res.Summary.ActiveCount,
			AverageROIPct: domain.Percent(res.Summary.AverageROI),
			TotalBudget:   res.Summary.TotalBudget,
		},
		Pagination: paginationResponse{
			Page:       res.Page.CurrentPage,
			PageSize:   q.PageSize,
			TotalPages: res.Page.TotalPages,
			TotalItems: res.Page.TotalItems,
		},
		Statuses: statuses,
		Skipped:  skipped,
	})
}

// handleGet returns the nested view of one campaign with its rates and ROI
// as percentages.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "campaignID")
	c, err := h.query.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign error", err)
		return
	}
	doc := domain.Serialize(*c)
	doc["performance_summary"] = percentRates(doc["performance_summary"].(domain.Document), c.PerformanceSummary)
	warnings := c.QualityWarnings()
	if warnings == nil {
		warnings = []string{}
	}
	h.writeJSON(w, http.StatusOK, detailResponse{Campaign: doc, Warnings: warnings})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.query.Refresh(r.Context()); err != nil {
		h.writeError(w, "refresh error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func percentRates(doc domain.Document, p domain.PerformanceSummary) domain.Document {
	doc["overall_response_rate"] = domain.Percent(p.OverallResponseRate)
	doc["overall_conversion_rate"] = domain.Percent(p.OverallConversionRate)
	doc["campaign_roi"] = domain.Percent(p.CampaignROI)
	return doc
}

func parseListQuery(r *http.Request) (port.ListQuery, error) {
	values := r.URL.Query()
	q := port.ListQuery{
		Search:   values.Get("q"),
		Page:     1,
		PageSize: defaultPageSize,
	}
	for _, raw := range values["status"] {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			st, ok := domain.ParseStatus(part)
			if !ok {
				return port.ListQuery{}, fmt.Errorf("unknown status %q", part)
			}
			q.Statuses = append(q.Statuses, st)
		}
	}
	var err error
	if s := values.Get("page"); s != "" {
		if q.Page, err = strconv.Atoi(s); err != nil {
			return port.ListQuery{}, fmt.Errorf("invalid page %q", s)
		}
	}
	if s := values.Get("page_size"); s != "" {
		if q.PageSize, err = strconv.Atoi(s); err != nil {
			return port.ListQuery{}, fmt.Errorf("invalid page_size %q", s)
		}
	}
	return q, nil
}
