package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mailcamp/internal/core/domain"
)

func TestReadCSV(t *testing.T) {
	in := "\ufeffCampaign ID,Campaign Name,Overall Budget\n" +
		"CAM1,\"Spring, the sequel\",1000\n" +
		",,\n" +
		"CAM2,Summer\n"

	table, err := NewReader().Read("upload.CSV", strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Campaign ID", "Campaign Name", "Overall Budget"}, table.Header)
	assert.Equal(t, [][]string{
		{"CAM1", "Spring, the sequel", "1000"},
		{"CAM2", "Summer"},
	}, table.Records)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := NewReader().Read("a.csv", strings.NewReader("campaign_id\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Records)
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := NewReader().Read("a.csv", strings.NewReader(""))
	require.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Campaign ID", "Overall Budget", "Cell No"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"CAM1", 1500, "A1"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"CAM2", 2500.5, "B2"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	table, err := NewReader().Read("campaigns.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Campaign ID", "Overall Budget", "Cell No"}, table.Header)
	assert.Equal(t, [][]string{
		{"CAM1", "1500", "A1"},
		{"CAM2", "2500.5", "B2"},
	}, table.Records)
}

func TestReadUnsupportedFormat(t *testing.T) {
	_, err := NewReader().Read("campaigns.json", strings.NewReader("[]"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestReadXLSXCorrupt(t *testing.T) {
	_, err := NewReader().Read("campaigns.xlsx", strings.NewReader("not a zip"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedFormat)
}
