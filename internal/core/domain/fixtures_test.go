package domain

import "time"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func sampleCampaign() CampaignData {
	sent := date(2024, time.March, 5)
	return CampaignData{
		CampaignID:             "CAM0001",
		CampaignName:           "Spring Campaign 2024-03",
		Description:            "Reactivation mailer for lapsed customers",
		CampaignGoal:           "Customer reactivation",
		TargetAudienceCriteria: "Families in Urban areas who are Inactive customers",
		OverallStartDate:       date(2024, time.March, 1),
		OverallEndDate:         date(2024, time.May, 30),
		CampaignStatus:         StatusCompleted,
		CostDetails: CostDetails{
			OverallBudget:            20000,
			TotalCampaignCostPlanned: 18000,
			TotalCampaignCostActual:  15500,
			CostPerPiecePlanned:      0.9,
			CostPerPieceActual:       0.775,
			CostBreakdown: CostBreakdown{
				PrintingCostActual: 5000,
				PostageCostActual:  7500,
				DataCostActual:     2000,
				OtherCostsActual:   1000,
			},
		},
		StrategyCells: []StrategyCell{
			{
				CellNo:                       "A1",
				CellDescription:              "High Value Customers",
				AssignedCreativeID:           "CR001",
				AssignedOfferCode:            ptr("OFF100"),
				CampaignTotalMailed:          12000,
				CampaignTotalResponses:       600,
				CampaignTotalConversions:     120,
				CampaignTotalConversionValue: 60000,
			},
			{
				CellNo:                       "B2",
				CellDescription:              "Control",
				AssignedCreativeID:           "CR002",
				CampaignTotalMailed:          8000,
				CampaignTotalResponses:       200,
				CampaignTotalConversions:     30,
				CampaignTotalConversionValue: 9000,
			},
		},
		WeeklyMailDrops: []WeeklyMailDrop{
			{
				MailDropID:              "MD0001",
				MailingWeekStartDate:    date(2024, time.March, 4),
				PlannedSendDate:         date(2024, time.March, 5),
				ActualSendDate:          &sent,
				TotalPiecesSentThisWeek: 20000,
				CellsMailedThisWeek: []CellMailedThisWeek{
					{CellNo: "A1", QuantityMailedThisWeek: 12000, ResponsesThisWeek: 600, ConversionsThisWeek: 120, ConversionValueThisWeek: 60000},
					{CellNo: "B2", QuantityMailedThisWeek: 8000, ResponsesThisWeek: 200, ConversionsThisWeek: 30, ConversionValueThisWeek: 9000},
				},
			},
			{
				MailDropID:              "MD0002",
				MailingWeekStartDate:    date(2024, time.March, 11),
				PlannedSendDate:         date(2024, time.March, 12),
				TotalPiecesSentThisWeek: 0,
			},
		},
		PerformanceSummary: ComputePerformance(20000, 800, 150, 69000, 15500),
	}
}

func sampleRow() Row {
	return Row{
		"campaign_id":                     "CAM0042",
		"campaign_name":                   "Holiday Campaign 2024-11",
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
		"assigned_offer_code":             nil,
		"campaign_total_mailed":           "10000",
		"campaign_total_responses":        "500",
		"campaign_total_conversions":      "100.0",
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
