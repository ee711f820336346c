package domain

// CampaignRow is the flat list view of a campaign. Rates are percentages
// rounded to two decimals.
type CampaignRow struct {
	CampaignID             string  `json:"campaign_id"`
	CampaignName           string  `json:"campaign_name"`
	Description            string  `json:"description"`
	CampaignGoal           string  `json:"campaign_goal"`
	TargetAudienceCriteria string  `json:"target_audience_criteria"`
	OverallStartDate       string  `json:"overall_start_date"`
	OverallEndDate         string  `json:"overall_end_date"`
	CampaignStatus         Status  `json:"campaign_status"`
	OverallBudget          float64 `json:"overall_budget"`
	TotalCostActual        float64 `json:"total_cost_actual"`
	PiecesSent             int64   `json:"pieces_sent"`
	ResponseRatePct        float64 `json:"response_rate_pct"`
	ConversionRatePct      float64 `json:"conversion_rate_pct"`
	ROIPct                 float64 `json:"roi_pct"`
}

// Flatten builds the list view of c.
func Flatten(c CampaignData) CampaignRow {
	return CampaignRow{
		CampaignID:             c.CampaignID,
		CampaignName:           c.CampaignName,
		Description:            c.Description,
		CampaignGoal:           c.CampaignGoal,
		TargetAudienceCriteria: c.TargetAudienceCriteria,
		OverallStartDate:       formatDate(c.OverallStartDate),
		OverallEndDate:         formatDate(c.OverallEndDate),
		CampaignStatus:         c.CampaignStatus,
		OverallBudget:          c.CostDetails.OverallBudget,
		TotalCostActual:        c.CostDetails.TotalCampaignCostActual,
		PiecesSent:             c.PerformanceSummary.TotalCampaignPiecesSent,
		ResponseRatePct:        Percent(c.PerformanceSummary.OverallResponseRate),
		ConversionRatePct:      Percent(c.PerformanceSummary.OverallConversionRate),
		ROIPct:                 Percent(c.PerformanceSummary.CampaignROI),
	}
}
