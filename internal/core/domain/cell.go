package domain

import "strings"

// StrategyCell is a targeting segment of a campaign with its creative and
// offer assignment and cumulative counters.
type StrategyCell struct {
	CellNo                       string
	CellDescription              string
	AssignedCreativeID           string
	AssignedOfferCode            *string
	CampaignTotalMailed          int64
	CampaignTotalResponses       int64
	CampaignTotalConversions     int64
	CampaignTotalConversionValue float64
}

// Validate enforces conversions <= responses <= mailed.
func (c StrategyCell) Validate() error {
	if strings.TrimSpace(c.CellNo) == "" {
		return invalid("cell_no", "must not be empty")
	}
	if err := nonNegative(
		amount{"campaign_total_mailed", float64(c.CampaignTotalMailed)},
		amount{"campaign_total_responses", float64(c.CampaignTotalResponses)},
		amount{"campaign_total_conversions", float64(c.CampaignTotalConversions)},
		amount{"campaign_total_conversion_value", c.CampaignTotalConversionValue},
	); err != nil {
		return err
	}
	if c.CampaignTotalConversions > c.CampaignTotalResponses {
		return invalid("campaign_total_conversions", "%d conversions exceed %d responses in cell %s",
			c.CampaignTotalConversions, c.CampaignTotalResponses, c.CellNo)
	}
	if c.CampaignTotalResponses > c.CampaignTotalMailed {
		return invalid("campaign_total_responses", "%d responses exceed %d pieces mailed in cell %s",
			c.CampaignTotalResponses, c.CampaignTotalMailed, c.CellNo)
	}
	return nil
}

func (c StrategyCell) document() Document {
	return Document{
		"cell_no":                         c.CellNo,
		"cell_description":                c.CellDescription,
		"assigned_creative_id":            c.AssignedCreativeID,
		"assigned_offer_code":             optionalString(c.AssignedOfferCode),
		"campaign_total_mailed":           c.CampaignTotalMailed,
		"campaign_total_responses":        c.CampaignTotalResponses,
		"campaign_total_conversions":      c.CampaignTotalConversions,
		"campaign_total_conversion_value": c.CampaignTotalConversionValue,
	}
}

func readStrategyCell(r *fieldReader) StrategyCell {
	return StrategyCell{
		CellNo:                       r.str("cell_no"),
		CellDescription:              r.str("cell_description"),
		AssignedCreativeID:           r.str("assigned_creative_id"),
		AssignedOfferCode:            r.optStr("assigned_offer_code"),
		CampaignTotalMailed:          r.integer("campaign_total_mailed"),
		CampaignTotalResponses:       r.integer("campaign_total_responses"),
		CampaignTotalConversions:     r.integer("campaign_total_conversions"),
		CampaignTotalConversionValue: r.number("campaign_total_conversion_value"),
	}
}

// optionalString maps a missing value to nil in the document so it is
// stored as null rather than as an empty string.
func optionalString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
