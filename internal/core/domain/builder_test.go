package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromRow(t *testing.T) {
	c, err := BuildFromRow(sampleRow(), BuildOptions{Now: date(2026, time.October, 19)})
	require.NoError(t, err)

	assert.Equal(t, "CAM0042", c.CampaignID)
	assert.Equal(t, StatusCompleted, c.CampaignStatus)
	assert.Equal(t, date(2024, time.November, 1), c.OverallStartDate)
	assert.InDelta(t, 9000, c.CostDetails.CostBreakdown.Total(), 1e-9)

	require.Len(t, c.StrategyCells, 1)
	cell := c.StrategyCells[0]
	assert.Equal(t, "C3", cell.CellNo)
	assert.Nil(t, cell.AssignedOfferCode)
	assert.Equal(t, int64(100), cell.CampaignTotalConversions)

	require.Len(t, c.WeeklyMailDrops, 1)
	drop := c.WeeklyMailDrops[0]
	require.NotNil(t, drop.ActualSendDate)
	assert.Equal(t, date(2024, time.November, 4), *drop.ActualSendDate)
	require.Len(t, drop.CellsMailedThisWeek, 1)
	assert.Equal(t, CellMailedThisWeek{
		CellNo:                  "C3",
		QuantityMailedThisWeek:  10000,
		ResponsesThisWeek:       500,
		ConversionsThisWeek:     100,
		ConversionValueThisWeek: 25000.50,
	}, drop.CellsMailedThisWeek[0])

	assert.InDelta(t, 0.05, c.PerformanceSummary.OverallResponseRate, 1e-12)
	assert.Empty(t, c.QualityWarnings())
}

func TestBuildFromRowRoundTrips(t *testing.T) {
	c, err := BuildFromRow(sampleRow(), BuildOptions{Now: date(2026, time.October, 19)})
	require.NoError(t, err)

	got, err := BuildFromDocument(Serialize(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestBuildFromRowMissingField(t *testing.T) {
	row := sampleRow()
	delete(row, "postage_cost_actual")

	_, err := BuildFromRow(row, BuildOptions{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "postage_cost_actual", ve.Field)
	assert.Contains(t, ve.Reason, "missing")
}

func TestBuildFromRowRejectsNonNumeric(t *testing.T) {
	row := sampleRow()
	row["overall_budget"] = "twelve thousand"

	_, err := BuildFromRow(row, BuildOptions{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "overall_budget", ve.Field)
}

func TestBuildFromRowRejectsFractionalCount(t *testing.T) {
	row := sampleRow()
	row["campaign_total_mailed"] = "10000.5"

	_, err := BuildFromRow(row, BuildOptions{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "campaign_total_mailed", ve.Field)
}

func TestBuildFromRowCounterInvariant(t *testing.T) {
	row := sampleRow()
	row["campaign_total_conversions"] = "501"

	_, err := BuildFromRow(row, BuildOptions{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "campaign_total_conversions", ve.Field)

	row = sampleRow()
	row["campaign_total_responses"] = "10001"
	row["total_campaign_responses"] = "10001"
	_, err = BuildFromRow(row, BuildOptions{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "campaign_total_responses", ve.Field)
}

func TestBuildFromRowUnknownStatus(t *testing.T) {
	row := sampleRow()
	row["campaign_status"] = "Paused"

	_, err := BuildFromRow(row, BuildOptions{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "campaign_status", ve.Field)
}

func TestBuildFromRowStatusDerivation(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)
	cases := []struct {
		name       string
		start, end time.Time
		want       Status
	}{
		{"starts next year", now.AddDate(1, 0, 0), now.AddDate(1, 3, 0), StatusPlanned},
		{"ended last year", now.AddDate(-1, -3, 0), now.AddDate(-1, 0, 0), StatusCompleted},
		{"spans today", now.AddDate(0, -1, 0), now.AddDate(0, 1, 0), StatusActive},
		{"ends today", now.AddDate(0, -1, 0), now, StatusActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := sampleRow()
			row["campaign_status"] = nil
			row["overall_start_date"] = tc.start.Format(DateLayout)
			row["overall_end_date"] = tc.end.Format(DateLayout)

			c, err := BuildFromRow(row, BuildOptions{Now: now})
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.CampaignStatus)
		})
	}
}

func TestBuildFromRowSuppliedStatusWinsUnlessDerivationRequested(t *testing.T) {
	row := sampleRow()
	row["campaign_status"] = "planned"
	now := date(2026, time.October, 19)

	c, err := BuildFromRow(row, BuildOptions{Now: now})
	require.NoError(t, err)
	assert.Equal(t, StatusPlanned, c.CampaignStatus)

	c, err = BuildFromRow(row, BuildOptions{Now: now, DeriveStatus: true})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, c.CampaignStatus)
}

func TestBuildFromRowRatesAsPercent(t *testing.T) {
	row := sampleRow()
	row["overall_response_rate"] = "5"
	row["overall_conversion_rate"] = "20"
	row["campaign_roi"] = "-12.5"

	c, err := BuildFromRow(row, BuildOptions{RatesAsPercent: true})
	require.NoError(t, err)
	assert.InDelta(t, 0.05, c.PerformanceSummary.OverallResponseRate, 1e-12)
	assert.InDelta(t, 0.2, c.PerformanceSummary.OverallConversionRate, 1e-12)
	assert.InDelta(t, -0.125, c.PerformanceSummary.CampaignROI, 1e-12)
}

func TestBuildFromRowExplicitWeeklyCounters(t *testing.T) {
	row := sampleRow()
	row["responses_this_week"] = "120"
	row["conversions_this_week"] = "30"
	row["conversion_value_this_week"] = "7000"

	c, err := BuildFromRow(row, BuildOptions{})
	require.NoError(t, err)
	wc := c.WeeklyMailDrops[0].CellsMailedThisWeek[0]
	assert.Equal(t, int64(120), wc.ResponsesThisWeek)
	assert.Equal(t, int64(30), wc.ConversionsThisWeek)
	assert.InDelta(t, 7000, wc.ConversionValueThisWeek, 1e-9)
}

func TestBuildFromRowWeeklyQuantityMustMatchDrop(t *testing.T) {
	row := sampleRow()
	row["quantity_mailed_this_week"] = "9000"

	_, err := BuildFromRow(row, BuildOptions{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cells_mailed_this_week", ve.Field)
}

func TestBuildFromRowAcceptsSpreadsheetDates(t *testing.T) {
	row := sampleRow()
	row["overall_start_date"] = "2024-11-01 00:00:00"
	row["planned_send_date"] = "11/3/2024"

	c, err := BuildFromRow(row, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.November, 1), c.OverallStartDate)
	assert.Equal(t, date(2024, time.November, 3), c.WeeklyMailDrops[0].PlannedSendDate)

	row["overall_end_date"] = "end of year"
	_, err = BuildFromRow(row, BuildOptions{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "overall_end_date", ve.Field)
}

func TestNewCampaignValidation(t *testing.T) {
	c := sampleCampaign()
	c.StrategyCells = nil
	_, err := NewCampaign(c)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "strategy_cells", ve.Field)

	c = sampleCampaign()
	c.StrategyCells[1].CellNo = "A1"
	_, err = NewCampaign(c)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cell_no", ve.Field)

	c = sampleCampaign()
	c.WeeklyMailDrops[0].CellsMailedThisWeek[1].CellNo = "Z9"
	c.StrategyCells = append(c.StrategyCells, StrategyCell{CellNo: "Q1"})
	_, err = NewCampaign(c)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cells_mailed_this_week.cell_no", ve.Field)

	c = sampleCampaign()
	c.CostDetails.CostBreakdown.DataCostActual = -1
	_, err = NewCampaign(c)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "data_cost_actual", ve.Field)
}

func TestNewCampaignCopiesSlices(t *testing.T) {
	src := sampleCampaign()
	c, err := NewCampaign(src)
	require.NoError(t, err)

	src.StrategyCells[0].CellDescription = "changed"
	src.WeeklyMailDrops[0].CellsMailedThisWeek[0].ResponsesThisWeek = 1
	assert.Equal(t, "High Value Customers", c.StrategyCells[0].CellDescription)
	assert.Equal(t, int64(600), c.WeeklyMailDrops[0].CellsMailedThisWeek[0].ResponsesThisWeek)
}

func TestQualityWarnings(t *testing.T) {
	c, err := NewCampaign(sampleCampaign())
	require.NoError(t, err)
	assert.Empty(t, c.QualityWarnings())

	c.CostDetails.CostBreakdown.OtherCostsActual = 2000
	c.CostDetails.CostPerPieceActual = 2
	c.OverallEndDate = date(2024, time.January, 1)
	warnings := c.QualityWarnings()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "cost breakdown")
	assert.Contains(t, warnings[1], "cost per piece")
	assert.Contains(t, warnings[2], "end date")
}
