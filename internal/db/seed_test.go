package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
	"mailcamp/internal/core/port/mocks"
)

func TestSeed(t *testing.T) {
	now := time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)
	ingest := mocks.NewMockIngestUseCase(t)

	var got []domain.Document
	ingest.EXPECT().IngestDocuments(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, docs []domain.Document) (*port.IngestionReport, error) {
			got = docs
			return &port.IngestionReport{InsertedCount: len(docs)}, nil
		}).Once()

	report, err := Seed(context.Background(), ingest, 50, now)
	require.NoError(t, err)
	assert.Equal(t, 50, report.InsertedCount)
	require.Len(t, got, 50)

	ids := make(map[string]struct{}, len(got))
	for _, doc := range got {
		c, err := domain.BuildFromDocument(doc)
		require.NoError(t, err, doc.CampaignID())
		ids[c.CampaignID] = struct{}{}

		assert.Equal(t, domain.DeriveStatus(c.OverallStartDate, c.OverallEndDate, now), c.CampaignStatus)
		assert.Empty(t, c.QualityWarnings(), c.CampaignID)
		assert.NotEmpty(t, c.WeeklyMailDrops)
		ps := c.PerformanceSummary
		assert.LessOrEqual(t, ps.OverallResponseRate, 1.0)
		assert.LessOrEqual(t, ps.OverallConversionRate, 1.0)
		for _, d := range c.WeeklyMailDrops {
			if c.CampaignStatus == domain.StatusPlanned {
				assert.Nil(t, d.ActualSendDate)
			}
		}
	}
	assert.Len(t, ids, 50)
}

func TestSeedNothing(t *testing.T) {
	report, err := Seed(context.Background(), mocks.NewMockIngestUseCase(t), 0, time.Now())
	require.NoError(t, err)
	assert.Zero(t, report.InsertedCount)
}

func TestShare(t *testing.T) {
	var sum int64
	for i := range 3 {
		sum += share(10, i, 3)
	}
	assert.Equal(t, int64(10), sum)
	assert.Equal(t, int64(4), share(10, 2, 3))
}
