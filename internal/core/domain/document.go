package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the nested key-value form of a campaign as it is stored.
// Nested objects are Documents, lists are []any and absent optional values
// are nil.
type Document map[string]any

// CampaignID returns the campaign id carried by the document, or "" if it
// has none.
func (d Document) CampaignID() string {
	s, _ := d["campaign_id"].(string)
	return s
}

// Serialize renders c as a Document with stable key names.
func Serialize(c CampaignData) Document {
	cells := make([]any, 0, len(c.StrategyCells))
	for _, cell := range c.StrategyCells {
		cells = append(cells, cell.document())
	}
	drops := make([]any, 0, len(c.WeeklyMailDrops))
	for _, drop := range c.WeeklyMailDrops {
		drops = append(drops, drop.document())
	}
	return Document{
		"campaign_id":              c.CampaignID,
		"campaign_name":            c.CampaignName,
		"description":              c.Description,
		"campaign_goal":            c.CampaignGoal,
		"target_audience_criteria": c.TargetAudienceCriteria,
		"overall_start_date":       formatDate(c.OverallStartDate),
		"overall_end_date":         formatDate(c.OverallEndDate),
		"campaign_status":          string(c.CampaignStatus),
		"cost_details":             c.CostDetails.document(),
		"strategy_cells":           cells,
		"weekly_mail_drops":        drops,
		"performance_summary":      c.PerformanceSummary.document(),
	}
}

// Deserialize is the inverse of Serialize. Any mismatch with the nested
// shape, including a failed invariant, is reported as a
// *DeserializationError.
func Deserialize(doc Document) (CampaignData, error) {
	r := newFieldReader(doc)
	c := CampaignData{
		CampaignID:             r.str("campaign_id"),
		CampaignName:           r.str("campaign_name"),
		Description:            r.str("description"),
		CampaignGoal:           r.str("campaign_goal"),
		TargetAudienceCriteria: r.str("target_audience_criteria"),
		OverallStartDate:       r.date("overall_start_date"),
		OverallEndDate:         r.date("overall_end_date"),
	}
	status := r.str("campaign_status")
	costs := r.object("cost_details")
	c.CostDetails = readCostDetails(costs, costs.object("cost_breakdown"))
	for _, cell := range r.array("strategy_cells") {
		c.StrategyCells = append(c.StrategyCells, readStrategyCell(cell))
	}
	for _, drop := range r.array("weekly_mail_drops") {
		c.WeeklyMailDrops = append(c.WeeklyMailDrops, readWeeklyMailDrop(drop))
	}
	c.PerformanceSummary = readPerformanceSummary(r.object("performance_summary"))
	if err := r.err(); err != nil {
		return CampaignData{}, &DeserializationError{Err: err}
	}
	st, ok := ParseStatus(status)
	if !ok {
		return CampaignData{}, &DeserializationError{Err: invalid("campaign_status", "unknown status %q", status)}
	}
	c.CampaignStatus = st
	out, err := NewCampaign(c)
	if err != nil {
		return CampaignData{}, &DeserializationError{Err: err}
	}
	return out, nil
}

// DecodeDocument parses a JSON object into a Document. Numbers are kept as
// json.Number so integer counters survive exactly.
func DecodeDocument(raw []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode campaign document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode campaign document: not an object")
	}
	return doc, nil
}
