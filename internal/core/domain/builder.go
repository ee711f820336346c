package domain

import "time"

// BuildOptions control how flat rows become campaigns.
type BuildOptions struct {
	// Now is the instant status derivation is relative to.
	Now time.Time
	// DeriveStatus recomputes the status from the campaign dates even when
	// the row supplies one.
	DeriveStatus bool
	// RatesAsPercent marks the flat rate and ROI columns as percentages;
	// they are divided by 100 so the stored value is a fraction.
	RatesAsPercent bool
}

// RequiredColumns lists the flat columns a row must carry.
var RequiredColumns = []string{
	"campaign_id", "campaign_name", "description", "campaign_goal", "target_audience_criteria",
	"overall_start_date", "overall_end_date", "campaign_status",
	"overall_budget", "total_campaign_cost_planned", "total_campaign_cost_actual",
	"cost_per_piece_planned", "cost_per_piece_actual",
	"printing_cost_actual", "postage_cost_actual", "data_cost_actual", "other_costs_actual",
	"cell_no", "cell_description", "assigned_creative_id", "assigned_offer_code",
	"campaign_total_mailed", "campaign_total_responses", "campaign_total_conversions",
	"campaign_total_conversion_value",
	"mail_drop_id", "mailing_week_start_date", "planned_send_date", "actual_send_date",
	"total_pieces_sent_this_week",
	"total_campaign_pieces_sent", "total_campaign_responses", "overall_response_rate",
	"total_campaign_conversions", "overall_conversion_rate", "total_campaign_conversion_value",
	"average_conversion_value", "campaign_roi",
}

// BuildFromRow maps one flat row onto the nested schema. A row describes
// exactly one strategy cell and one mail drop, so both collections come
// out as singletons. A blank campaign_status is derived from the dates.
func BuildFromRow(row Row, opts BuildOptions) (CampaignData, error) {
	r := newFieldReader(row)
	c := CampaignData{
		CampaignID:             r.str("campaign_id"),
		CampaignName:           r.str("campaign_name"),
		Description:            r.str("description"),
		CampaignGoal:           r.str("campaign_goal"),
		TargetAudienceCriteria: r.str("target_audience_criteria"),
		OverallStartDate:       r.date("overall_start_date"),
		OverallEndDate:         r.date("overall_end_date"),
		CostDetails:            readCostDetails(r, r),
	}
	status := r.optStr("campaign_status")
	cell := readStrategyCell(r)
	drop := WeeklyMailDrop{
		MailDropID:              r.str("mail_drop_id"),
		MailingWeekStartDate:    r.date("mailing_week_start_date"),
		PlannedSendDate:         r.date("planned_send_date"),
		ActualSendDate:          r.optDate("actual_send_date"),
		TotalPiecesSentThisWeek: r.integer("total_pieces_sent_this_week"),
	}
	drop.CellsMailedThisWeek = []CellMailedThisWeek{weeklyContribution(r, cell, drop)}
	c.PerformanceSummary = readPerformanceSummary(r)
	if err := r.err(); err != nil {
		return CampaignData{}, err
	}

	switch {
	case opts.DeriveStatus || status == nil:
		c.CampaignStatus = DeriveStatus(c.OverallStartDate, c.OverallEndDate, opts.Now)
	default:
		st, ok := ParseStatus(*status)
		if !ok {
			return CampaignData{}, invalid("campaign_status", "unknown status %q", *status)
		}
		c.CampaignStatus = st
	}
	if opts.RatesAsPercent {
		c.PerformanceSummary.OverallResponseRate /= 100
		c.PerformanceSummary.OverallConversionRate /= 100
		c.PerformanceSummary.CampaignROI /= 100
	}
	c.StrategyCells = []StrategyCell{cell}
	c.WeeklyMailDrops = []WeeklyMailDrop{drop}
	return NewCampaign(c)
}

// BuildFromDocument reconstructs a campaign read back from the store.
func BuildFromDocument(doc Document) (CampaignData, error) {
	return Deserialize(doc)
}

// weeklyContribution is the row's single cell entry for its mail drop. The
// row's drop is the only one the campaign has, so the cell totals stand in
// for the weekly counters unless the row carries them explicitly.
func weeklyContribution(r *fieldReader, cell StrategyCell, drop WeeklyMailDrop) CellMailedThisWeek {
	wc := CellMailedThisWeek{
		CellNo:                  cell.CellNo,
		QuantityMailedThisWeek:  drop.TotalPiecesSentThisWeek,
		ResponsesThisWeek:       cell.CampaignTotalResponses,
		ConversionsThisWeek:     cell.CampaignTotalConversions,
		ConversionValueThisWeek: cell.CampaignTotalConversionValue,
	}
	if n, ok := r.optInteger("quantity_mailed_this_week"); ok {
		wc.QuantityMailedThisWeek = n
	}
	if n, ok := r.optInteger("responses_this_week"); ok {
		wc.ResponsesThisWeek = n
	}
	if n, ok := r.optInteger("conversions_this_week"); ok {
		wc.ConversionsThisWeek = n
	}
	if v, ok := r.optNumber("conversion_value_this_week"); ok {
		wc.ConversionValueThisWeek = v
	}
	return wc
}
