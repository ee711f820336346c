package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"mailcamp/internal/core/domain"
)

const utf8BOM = "\ufeff"

// Reader implements port.TableReader for comma-separated text and XLSX
// workbooks.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read dispatches on the file extension. The first row of the file is the
// header; rows with no content at all are dropped.
func (rd *Reader) Read(name string, r io.Reader) (domain.Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	default:
		return domain.Table{}, fmt.Errorf("%w: %q (want .csv or .xlsx)", domain.ErrUnsupportedFormat, name)
	}
}

func readCSV(r io.Reader) (domain.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}
	return toTable(records)
}

func readXLSX(r io.Reader) (domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return toTable(rows)
}

func toTable(rows [][]string) (domain.Table, error) {
	if len(rows) == 0 {
		return domain.Table{}, errors.New("file has no header row")
	}
	t := domain.Table{Header: rows[0]}
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		t.Records = append(t.Records, row)
	}
	return t, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
