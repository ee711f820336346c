package domain

import (
	"slices"
	"strings"
)

// FilterCampaigns keeps the records whose status is in statuses and whose
// name or description contains search, ignoring case. An empty status set
// and an empty search term each disable their filter. Order is preserved.
func FilterCampaigns(records []CampaignData, statuses []Status, search string) []CampaignData {
	if len(statuses) == 0 && search == "" {
		return records
	}
	term := strings.ToLower(search)
	out := make([]CampaignData, 0, len(records))
	for _, c := range records {
		if len(statuses) > 0 && !slices.Contains(statuses, c.CampaignStatus) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.CampaignName), term) &&
			!strings.Contains(strings.ToLower(c.Description), term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Statuses returns the distinct statuses present in records, in order of
// first appearance.
func Statuses(records []CampaignData) []Status {
	var out []Status
	for _, c := range records {
		if !slices.Contains(out, c.CampaignStatus) {
			out = append(out, c.CampaignStatus)
		}
	}
	return out
}

// Page is one slice of a paginated result.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalItems  int
}

// Paginate returns the requested page of items. Pages outside
// [1, TotalPages] are clamped to the nearest valid page. An empty input
// yields page 0 of 0.
func Paginate[T any](items []T, page, pageSize int) (Page[T], error) {
	if pageSize <= 0 {
		return Page[T]{}, ErrInvalidPageSize
	}
	total := (len(items) + pageSize - 1) / pageSize
	p := Page[T]{TotalPages: total, TotalItems: len(items)}
	if total == 0 {
		p.Items = []T{}
		return p, nil
	}
	page = max(1, min(page, total))
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	p.CurrentPage = page
	p.Items = items[start:end]
	return p, nil
}

// Summary holds the headline metrics of a set of campaigns. AverageROI is a
// fraction like the stored ROI values.
type Summary struct {
	Total       int
	ActiveCount int
	AverageROI  float64
	TotalBudget float64
}

// Summarize computes the metrics over exactly the records given, so callers
// pass the filtered set.
func Summarize(records []CampaignData) Summary {
	s := Summary{Total: len(records)}
	var roi float64
	for _, c := range records {
		if c.CampaignStatus == StatusActive {
			s.ActiveCount++
		}
		roi += c.PerformanceSummary.CampaignROI
		s.TotalBudget += c.CostDetails.OverallBudget
	}
	if len(records) > 0 {
		s.AverageROI = roi / float64(len(records))
	}
	return s
}
