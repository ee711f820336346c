package domain

// CostBreakdown splits the actual campaign cost into its components.
type CostBreakdown struct {
	PrintingCostActual float64
	PostageCostActual  float64
	DataCostActual     float64
	OtherCostsActual   float64
}

// Total sums the four components.
func (b CostBreakdown) Total() float64 {
	return b.PrintingCostActual + b.PostageCostActual + b.DataCostActual + b.OtherCostsActual
}

// Validate rejects negative amounts.
func (b CostBreakdown) Validate() error {
	return nonNegative(
		amount{"printing_cost_actual", b.PrintingCostActual},
		amount{"postage_cost_actual", b.PostageCostActual},
		amount{"data_cost_actual", b.DataCostActual},
		amount{"other_costs_actual", b.OtherCostsActual},
	)
}

func (b CostBreakdown) document() Document {
	return Document{
		"printing_cost_actual": b.PrintingCostActual,
		"postage_cost_actual":  b.PostageCostActual,
		"data_cost_actual":     b.DataCostActual,
		"other_costs_actual":   b.OtherCostsActual,
	}
}

func readCostBreakdown(r *fieldReader) CostBreakdown {
	return CostBreakdown{
		PrintingCostActual: r.number("printing_cost_actual"),
		PostageCostActual:  r.number("postage_cost_actual"),
		DataCostActual:     r.number("data_cost_actual"),
		OtherCostsActual:   r.number("other_costs_actual"),
	}
}

// CostDetails carries planned and actual spend for a campaign.
type CostDetails struct {
	OverallBudget            float64
	TotalCampaignCostPlanned float64
	TotalCampaignCostActual  float64
	CostPerPiecePlanned      float64
	CostPerPieceActual       float64
	CostBreakdown            CostBreakdown
}

// Validate rejects negative amounts, including those of the breakdown.
func (d CostDetails) Validate() error {
	if err := nonNegative(
		amount{"overall_budget", d.OverallBudget},
		amount{"total_campaign_cost_planned", d.TotalCampaignCostPlanned},
		amount{"total_campaign_cost_actual", d.TotalCampaignCostActual},
		amount{"cost_per_piece_planned", d.CostPerPiecePlanned},
		amount{"cost_per_piece_actual", d.CostPerPieceActual},
	); err != nil {
		return err
	}
	return d.CostBreakdown.Validate()
}

func (d CostDetails) document() Document {
	return Document{
		"overall_budget":              d.OverallBudget,
		"total_campaign_cost_planned": d.TotalCampaignCostPlanned,
		"total_campaign_cost_actual":  d.TotalCampaignCostActual,
		"cost_per_piece_planned":      d.CostPerPiecePlanned,
		"cost_per_piece_actual":       d.CostPerPieceActual,
		"cost_breakdown":              d.CostBreakdown.document(),
	}
}

// readCostDetails reads the cost fields from r. The breakdown is read from
// breakdown, which is a nested object for documents and r itself for flat
// rows.
func readCostDetails(r, breakdown *fieldReader) CostDetails {
	return CostDetails{
		OverallBudget:            r.number("overall_budget"),
		TotalCampaignCostPlanned: r.number("total_campaign_cost_planned"),
		TotalCampaignCostActual:  r.number("total_campaign_cost_actual"),
		CostPerPiecePlanned:      r.number("cost_per_piece_planned"),
		CostPerPieceActual:       r.number("cost_per_piece_actual"),
		CostBreakdown:            readCostBreakdown(breakdown),
	}
}

type amount struct {
	field string
	value float64
}

func nonNegative(amounts ...amount) error {
	for _, a := range amounts {
		if a.value < 0 {
			return invalid(a.field, "must not be negative, got %v", a.value)
		}
	}
	return nil
}
