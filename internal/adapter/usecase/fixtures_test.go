package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// rowValues is one valid flat row keyed by column.
func rowValues(id string) map[string]string {
	return map[string]string{
		"campaign_id":                     id,
		"campaign_name":                   "Holiday Campaign " + id,
		"description":                     "Seasonal promotion for loyal buyers",
		"campaign_goal":                   "Seasonal promotion",
		"target_audience_criteria":        "Seniors in Suburban regions",
		"overall_start_date":              "2024-11-01",
		"overall_end_date":                "2024-12-31",
		"campaign_status":                 "Completed",
		"overall_budget":                  "12000",
		"total_campaign_cost_planned":     "10000",
		"total_campaign_cost_actual":      "9000",
		"cost_per_piece_planned":          "1.0",
		"cost_per_piece_actual":           "0.9",
		"printing_cost_actual":            "3000",
		"postage_cost_actual":             "4000",
		"data_cost_actual":                "1500",
		"other_costs_actual":              "500",
		"cell_no":                         "C3",
		"cell_description":                "Target segment Premium",
		"assigned_creative_id":            "CRab12cd",
		"assigned_offer_code":             "N/A",
		"campaign_total_mailed":           "10000",
		"campaign_total_responses":        "500",
		"campaign_total_conversions":      "100",
		"campaign_total_conversion_value": "25000.50",
		"mail_drop_id":                    "MD12345678",
		"mailing_week_start_date":         "2024-11-01",
		"planned_send_date":               "2024-11-03",
		"actual_send_date":                "2024-11-04",
		"total_pieces_sent_this_week":     "10000",
		"total_campaign_pieces_sent":      "10000",
		"total_campaign_responses":        "500",
		"overall_response_rate":           "0.05",
		"total_campaign_conversions":      "100",
		"overall_conversion_rate":         "0.2",
		"total_campaign_conversion_value": "25000.50",
		"average_conversion_value":        "250.005",
		"campaign_roi":                    "1.7778",
	}
}

// table lays the rows out under display-style headers, the way a
// spreadsheet export would.
func table(rows ...map[string]string) domain.Table {
	t := domain.Table{}
	for _, col := range domain.RequiredColumns {
		t.Header = append(t.Header, " "+col+" ")
	}
	for _, row := range rows {
		rec := make([]string, len(domain.RequiredColumns))
		for i, col := range domain.RequiredColumns {
			rec[i] = row[col]
		}
		t.Records = append(t.Records, rec)
	}
	return t
}

func campaignDocument(id string) domain.Document {
	row := domain.Row{}
	for k, v := range rowValues(id) {
		row[k] = v
	}
	row["assigned_offer_code"] = nil
	c, err := domain.BuildFromRow(row, domain.BuildOptions{})
	if err != nil {
		panic(err)
	}
	return domain.Serialize(c)
}

// sequentialIDs mimics the store assigning increasing ids.
func sequentialIDs(docs []domain.Document) []port.InsertOutcome {
	out := make([]port.InsertOutcome, len(docs))
	for i := range docs {
		out[i].ID = fmt.Sprint(i + 1)
	}
	return out
}
