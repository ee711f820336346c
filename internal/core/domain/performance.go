package domain

import "math"

// PerformanceSummary is the campaign-level rollup. Rates and ROI are stored
// as raw fractions (0.05 for five percent); Percent converts them for
// display.
type PerformanceSummary struct {
	TotalCampaignPiecesSent      int64
	TotalCampaignResponses       int64
	OverallResponseRate          float64
	TotalCampaignConversions     int64
	OverallConversionRate        float64
	TotalCampaignConversionValue float64
	AverageConversionValue       float64
	CampaignROI                  float64
}

// Validate rejects negative counters. Rates are left alone: ROI is
// legitimately negative for a losing campaign.
func (p PerformanceSummary) Validate() error {
	return nonNegative(
		amount{"total_campaign_pieces_sent", float64(p.TotalCampaignPiecesSent)},
		amount{"total_campaign_responses", float64(p.TotalCampaignResponses)},
		amount{"total_campaign_conversions", float64(p.TotalCampaignConversions)},
		amount{"total_campaign_conversion_value", p.TotalCampaignConversionValue},
		amount{"average_conversion_value", p.AverageConversionValue},
	)
}

func (p PerformanceSummary) document() Document {
	return Document{
		"total_campaign_pieces_sent":      p.TotalCampaignPiecesSent,
		"total_campaign_responses":        p.TotalCampaignResponses,
		"overall_response_rate":           p.OverallResponseRate,
		"total_campaign_conversions":      p.TotalCampaignConversions,
		"overall_conversion_rate":         p.OverallConversionRate,
		"total_campaign_conversion_value": p.TotalCampaignConversionValue,
		"average_conversion_value":        p.AverageConversionValue,
		"campaign_roi":                    p.CampaignROI,
	}
}

func readPerformanceSummary(r *fieldReader) PerformanceSummary {
	return PerformanceSummary{
		TotalCampaignPiecesSent:      r.integer("total_campaign_pieces_sent"),
		TotalCampaignResponses:       r.integer("total_campaign_responses"),
		OverallResponseRate:          r.number("overall_response_rate"),
		TotalCampaignConversions:     r.integer("total_campaign_conversions"),
		OverallConversionRate:        r.number("overall_conversion_rate"),
		TotalCampaignConversionValue: r.number("total_campaign_conversion_value"),
		AverageConversionValue:       r.number("average_conversion_value"),
		CampaignROI:                  r.number("campaign_roi"),
	}
}

// ComputePerformance derives a summary from raw counters. A zero denominator
// yields a zero rate.
func ComputePerformance(pieces, responses, conversions int64, value, actualCost float64) PerformanceSummary {
	return PerformanceSummary{
		TotalCampaignPiecesSent:      pieces,
		TotalCampaignResponses:       responses,
		OverallResponseRate:          ratio(float64(responses), float64(pieces)),
		TotalCampaignConversions:     conversions,
		OverallConversionRate:        ratio(float64(conversions), float64(responses)),
		TotalCampaignConversionValue: value,
		AverageConversionValue:       ratio(value, float64(conversions)),
		CampaignROI:                  ratio(value-actualCost, actualCost),
	}
}

// Percent converts a stored fraction to a percentage rounded to two
// decimals. This is the only place fractions become percentages.
func Percent(fraction float64) float64 {
	return math.Round(fraction*100*100) / 100
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
