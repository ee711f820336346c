package db

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
)

var (
	seasons   = []string{"Spring", "Summer", "Fall", "Winter", "Holiday", "Special"}
	goals     = []string{"Increase brand awareness", "Drive customer acquisition", "Boost customer retention", "Launch new product", "Seasonal promotion", "Customer reactivation", "Market expansion", "Cross-selling campaign"}
	audiences = []string{"Young professionals", "Families", "Seniors", "Students", "Business owners"}
	behaviors = []string{"Recent purchasers", "High-value customers", "Inactive customers", "Frequent shoppers"}
	locations = []string{"Urban areas", "Suburban regions", "Rural communities", "Metropolitan zones"}
	segments  = []string{"Premium", "Standard", "Value", "Test", "Control"}
)

// Seed generates n sample campaigns around now and stores them through
// the regular ingestion path.
func Seed(ctx context.Context, ingest port.IngestUseCase, n int, now time.Time) (*port.IngestionReport, error) {
	if n <= 0 {
		return &port.IngestionReport{}, nil
	}
	r := rand.New(rand.NewSource(now.UnixNano()))
	docs := make([]domain.Document, 0, n)
	for i := 1; i <= n; i++ {
		docs = append(docs, domain.Serialize(sampleCampaign(r, i, now)))
	}
	report, err := ingest.IngestDocuments(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("seed campaigns: %w", err)
	}
	return report, nil
}

func sampleCampaign(r *rand.Rand, i int, now time.Time) domain.CampaignData {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, r.Intn(3*365)-2*365)
	end := start.AddDate(0, 0, 30+r.Intn(151))

	scale := 0.5 + 1.5*r.Float64()
	breakdown := domain.CostBreakdown{
		PrintingCostActual: cents((500 + 9500*r.Float64()) * scale),
		PostageCostActual:  cents((1000 + 14000*r.Float64()) * scale),
		DataCostActual:     cents((300 + 4700*r.Float64()) * scale),
		OtherCostsActual:   cents((100 + 2900*r.Float64()) * scale),
	}
	actual := breakdown.Total()
	planned := cents(actual * (0.8 + 0.6*r.Float64()))

	cells := make([]domain.StrategyCell, 1+r.Intn(3))
	var pieces, responses, conversions int64
	var value float64
	for k := range cells {
		mailed := int64(1000 + r.Intn(20000))
		resp := int64(float64(mailed) * (0.01 + 0.14*r.Float64()))
		conv := int64(float64(resp) * (0.05 + 0.35*r.Float64()))
		val := cents(float64(conv) * (50 + 950*r.Float64()))
		cells[k] = domain.StrategyCell{
			CellNo:                       fmt.Sprintf("%c%d", 'A'+k, 1+r.Intn(9)),
			CellDescription:              "Target segment " + segments[r.Intn(len(segments))],
			AssignedCreativeID:           "CR" + uuid.NewString()[:6],
			CampaignTotalMailed:          mailed,
			CampaignTotalResponses:       resp,
			CampaignTotalConversions:     conv,
			CampaignTotalConversionValue: val,
		}
		if r.Intn(4) > 0 {
			code := fmt.Sprintf("OFF%03d", r.Intn(1000))
			cells[k].AssignedOfferCode = &code
		}
		pieces += mailed
		responses += resp
		conversions += conv
		value += val
	}

	status := domain.DeriveStatus(start, end, now)
	return domain.CampaignData{
		CampaignID:             fmt.Sprintf("CAM%04d", i),
		CampaignName:           fmt.Sprintf("%s Campaign %s", seasons[r.Intn(len(seasons))], start.Format("2006-01")),
		Description:            fmt.Sprintf("Marketing initiative focused on %s through targeted messaging and offers", goals[r.Intn(len(goals))]),
		CampaignGoal:           goals[r.Intn(len(goals))],
		TargetAudienceCriteria: fmt.Sprintf("%s in %s who are %s", audiences[r.Intn(len(audiences))], locations[r.Intn(len(locations))], behaviors[r.Intn(len(behaviors))]),
		OverallStartDate:       start,
		OverallEndDate:         end,
		CampaignStatus:         status,
		CostDetails: domain.CostDetails{
			OverallBudget:            cents(planned * (1.05 + 0.2*r.Float64())),
			TotalCampaignCostPlanned: planned,
			TotalCampaignCostActual:  actual,
			CostPerPiecePlanned:      planned / float64(pieces),
			CostPerPieceActual:       actual / float64(pieces),
			CostBreakdown:            breakdown,
		},
		StrategyCells:      cells,
		WeeklyMailDrops:    sampleDrops(r, cells, start, today, status),
		PerformanceSummary: domain.ComputePerformance(pieces, responses, conversions, value, actual),
	}
}

// sampleDrops spreads every cell's totals over one to three weekly drops.
// Drops of a planned campaign have not been sent yet.
func sampleDrops(r *rand.Rand, cells []domain.StrategyCell, start, today time.Time, status domain.Status) []domain.WeeklyMailDrop {
	weeks := 1 + r.Intn(3)
	drops := make([]domain.WeeklyMailDrop, weeks)
	for w := range drops {
		weekStart := start.AddDate(0, 0, 7*w)
		d := domain.WeeklyMailDrop{
			MailDropID:           "MD" + uuid.NewString()[:8],
			MailingWeekStartDate: weekStart,
			PlannedSendDate:      weekStart.AddDate(0, 0, 1+r.Intn(5)),
		}
		if sent := d.PlannedSendDate.AddDate(0, 0, r.Intn(3)); status != domain.StatusPlanned && !sent.After(today) {
			d.ActualSendDate = &sent
		}
		for _, c := range cells {
			wc := domain.CellMailedThisWeek{
				CellNo:                  c.CellNo,
				QuantityMailedThisWeek:  share(c.CampaignTotalMailed, w, weeks),
				ResponsesThisWeek:       share(c.CampaignTotalResponses, w, weeks),
				ConversionsThisWeek:     share(c.CampaignTotalConversions, w, weeks),
				ConversionValueThisWeek: c.CampaignTotalConversionValue / float64(weeks),
			}
			d.TotalPiecesSentThisWeek += wc.QuantityMailedThisWeek
			d.CellsMailedThisWeek = append(d.CellsMailedThisWeek, wc)
		}
		drops[w] = d
	}
	return drops
}

// share splits total into n integer parts; the last part takes the
// remainder.
func share(total int64, i, n int) int64 {
	part := total / int64(n)
	if i == n-1 {
		return total - part*int64(n-1)
	}
	return part
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}
