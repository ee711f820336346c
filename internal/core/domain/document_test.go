package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	c, err := NewCampaign(sampleCampaign())
	require.NoError(t, err)

	got, err := Deserialize(Serialize(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestSerializeRoundTripCanonicalizes(t *testing.T) {
	zone := time.FixedZone("UTC+1", 3600)
	tests := map[string]func(c *CampaignData){
		"time of day": func(c *CampaignData) {
			c.OverallStartDate = c.OverallStartDate.Add(15 * time.Hour)
		},
		"non-utc location": func(c *CampaignData) {
			c.OverallEndDate = time.Date(2024, time.May, 30, 0, 30, 0, 0, zone)
			sent := time.Date(2024, time.March, 5, 23, 0, 0, 0, zone)
			c.WeeklyMailDrops[0].ActualSendDate = &sent
		},
		"lower-case status": func(c *CampaignData) {
			c.CampaignStatus = "active"
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := sampleCampaign()
			mutate(&in)
			c, err := NewCampaign(in)
			require.NoError(t, err)

			got, err := Deserialize(Serialize(c))
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func TestNewCampaignCanonicalValues(t *testing.T) {
	in := sampleCampaign()
	in.CampaignStatus = "active"
	in.OverallEndDate = time.Date(2024, time.May, 30, 0, 30, 0, 0, time.FixedZone("UTC+1", 3600))

	c, err := NewCampaign(in)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, c.CampaignStatus)
	assert.Equal(t, date(2024, time.May, 30), c.OverallEndDate)
	assert.Equal(t, 1, Summarize([]CampaignData{c}).ActiveCount)
}

func TestSerializeRoundTripThroughJSON(t *testing.T) {
	c, err := NewCampaign(sampleCampaign())
	require.NoError(t, err)

	raw, err := json.Marshal(Serialize(c))
	require.NoError(t, err)
	doc, err := DecodeDocument(raw)
	require.NoError(t, err)

	got, err := Deserialize(doc)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestSerializeKeepsMissingOptionalsAsNull(t *testing.T) {
	c, err := NewCampaign(sampleCampaign())
	require.NoError(t, err)

	doc := Serialize(c)
	cells := doc["strategy_cells"].([]any)
	assert.Nil(t, cells[1].(Document)["assigned_offer_code"])
	drops := doc["weekly_mail_drops"].([]any)
	assert.Nil(t, drops[1].(Document)["actual_send_date"])
	assert.Equal(t, "2024-03-05", drops[0].(Document)["actual_send_date"])

	got, err := Deserialize(doc)
	require.NoError(t, err)
	assert.Nil(t, got.StrategyCells[1].AssignedOfferCode)
	assert.Nil(t, got.WeeklyMailDrops[1].ActualSendDate)
}

func TestDeserializeTruncatedDocument(t *testing.T) {
	c, err := NewCampaign(sampleCampaign())
	require.NoError(t, err)
	doc := Serialize(c)
	delete(doc["cost_details"].(Document), "cost_breakdown")

	_, err = Deserialize(doc)
	var de *DeserializationError
	require.ErrorAs(t, err, &de)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "cost_details.cost_breakdown", ve.Field)
}

func TestDeserializeWrongShape(t *testing.T) {
	c, err := NewCampaign(sampleCampaign())
	require.NoError(t, err)

	doc := Serialize(c)
	doc["strategy_cells"] = "A1"
	_, err = Deserialize(doc)
	var de *DeserializationError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, err.Error(), "strategy_cells")

	doc = Serialize(c)
	doc["weekly_mail_drops"].([]any)[0].(Document)["total_pieces_sent_this_week"] = "many"
	_, err = Deserialize(doc)
	require.ErrorAs(t, err, &de)
	assert.Contains(t, err.Error(), "weekly_mail_drops[0].total_pieces_sent_this_week")
}

func TestDeserializeLegacyDropWithoutCells(t *testing.T) {
	c, err := NewCampaign(sampleCampaign())
	require.NoError(t, err)
	doc := Serialize(c)
	doc["weekly_mail_drops"].([]any)[0].(Document)["cells_mailed_this_week"] = []any{}

	got, err := Deserialize(doc)
	require.NoError(t, err)
	assert.Empty(t, got.WeeklyMailDrops[0].CellsMailedThisWeek)
}

func TestDecodeDocumentRejectsNonObject(t *testing.T) {
	_, err := DecodeDocument([]byte(`null`))
	require.Error(t, err)
	_, err = DecodeDocument([]byte(`[1,2]`))
	require.Error(t, err)
}
