package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// CampaignData is the aggregate root of a stored campaign. Values are
// produced by NewCampaign or the builders and are treated as immutable:
// an edit means building a new value and storing it again.
type CampaignData struct {
	CampaignID             string
	CampaignName           string
	Description            string
	CampaignGoal           string
	TargetAudienceCriteria string
	OverallStartDate       time.Time
	OverallEndDate         time.Time
	CampaignStatus         Status
	CostDetails            CostDetails
	StrategyCells          []StrategyCell
	WeeklyMailDrops        []WeeklyMailDrop
	PerformanceSummary     PerformanceSummary
}

// NewCampaign validates c and returns a canonical copy that shares no
// slices with the argument: the status is spelled as its constant and
// every date is a UTC midnight, which is all a stored document can carry.
func NewCampaign(c CampaignData) (CampaignData, error) {
	if err := c.Validate(); err != nil {
		return CampaignData{}, err
	}
	out := c
	out.CampaignStatus, _ = ParseStatus(string(c.CampaignStatus))
	out.OverallStartDate = dateOnly(c.OverallStartDate)
	out.OverallEndDate = dateOnly(c.OverallEndDate)
	out.StrategyCells = cloneOrNil(c.StrategyCells)
	out.WeeklyMailDrops = nil
	for _, d := range c.WeeklyMailDrops {
		d.MailingWeekStartDate = dateOnly(d.MailingWeekStartDate)
		d.PlannedSendDate = dateOnly(d.PlannedSendDate)
		if d.ActualSendDate != nil {
			sent := dateOnly(*d.ActualSendDate)
			d.ActualSendDate = &sent
		}
		d.CellsMailedThisWeek = cloneOrNil(d.CellsMailedThisWeek)
		out.WeeklyMailDrops = append(out.WeeklyMailDrops, d)
	}
	return out, nil
}

// Validate checks every nested entity and the cross-entity rules: at least
// one strategy cell, unique cell numbers, and weekly entries that refer to
// a known cell.
func (c CampaignData) Validate() error {
	if strings.TrimSpace(c.CampaignID) == "" {
		return invalid("campaign_id", "must not be empty")
	}
	if _, ok := ParseStatus(string(c.CampaignStatus)); !ok {
		return invalid("campaign_status", "unknown status %q", c.CampaignStatus)
	}
	if err := c.CostDetails.Validate(); err != nil {
		return err
	}
	if len(c.StrategyCells) == 0 {
		return invalid("strategy_cells", "campaign %s has no strategy cells", c.CampaignID)
	}
	cells := make(map[string]struct{}, len(c.StrategyCells))
	for _, cell := range c.StrategyCells {
		if err := cell.Validate(); err != nil {
			return err
		}
		if _, dup := cells[cell.CellNo]; dup {
			return invalid("cell_no", "duplicate cell %s", cell.CellNo)
		}
		cells[cell.CellNo] = struct{}{}
	}
	for _, drop := range c.WeeklyMailDrops {
		if err := drop.Validate(); err != nil {
			return err
		}
		for _, wc := range drop.CellsMailedThisWeek {
			if _, ok := cells[wc.CellNo]; !ok {
				return invalid("cells_mailed_this_week.cell_no", "drop %s refers to unknown cell %s", drop.MailDropID, wc.CellNo)
			}
		}
	}
	return c.PerformanceSummary.Validate()
}

// QualityWarnings lists soft-invariant violations that do not block
// storage.
func (c CampaignData) QualityWarnings() []string {
	var warnings []string
	cd := c.CostDetails
	if sum := cd.CostBreakdown.Total(); math.Abs(sum-cd.TotalCampaignCostActual) > 0.01 {
		warnings = append(warnings, fmt.Sprintf("cost breakdown sums to %.2f but total actual cost is %.2f",
			sum, cd.TotalCampaignCostActual))
	}
	if pieces := c.PerformanceSummary.TotalCampaignPiecesSent; pieces > 0 {
		want := cd.TotalCampaignCostActual / float64(pieces)
		if want > 0 && math.Abs(cd.CostPerPieceActual-want)/want > 0.01 {
			warnings = append(warnings, fmt.Sprintf("actual cost per piece is %.4f, expected %.4f",
				cd.CostPerPieceActual, want))
		}
	}
	if c.OverallEndDate.Before(c.OverallStartDate) {
		warnings = append(warnings, fmt.Sprintf("end date %s precedes start date %s",
			formatDate(c.OverallEndDate), formatDate(c.OverallStartDate)))
	}
	return warnings
}

func cloneOrNil[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}
