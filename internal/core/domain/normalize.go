package domain

import (
	"strings"
	"unicode"
)

// Table is a parsed tabular upload: a header row and the data records in
// file order. Records may be shorter than the header.
type Table struct {
	Header  []string
	Records [][]string
}

// Row is one normalized record keyed by normalized column name. Values are
// strings, or nil where the cell held no value.
type Row map[string]any

// nullMarkers are cell values treated as "no value", matching what common
// spreadsheet and dataframe tools write for missing data.
var nullMarkers = map[string]struct{}{
	"NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"NULL": {}, "null": {}, "None": {}, "<NA>": {}, "#N/A": {},
}

// NormalizeHeader lower-cases a column name and collapses each run of
// whitespace into a single underscore.
func NormalizeHeader(h string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(h)), unicode.IsSpace)
	return strings.Join(fields, "_")
}

// NormalizeTable turns t into rows with normalized keys and explicit
// missing values. It never fails.
func NormalizeTable(t Table) []Row {
	header := make([]string, len(t.Header))
	for i, h := range t.Header {
		header[i] = NormalizeHeader(h)
	}
	rows := make([]Row, 0, len(t.Records))
	for _, rec := range t.Records {
		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			var cell string
			if i < len(rec) {
				cell = rec[i]
			}
			row[key] = normalizeCell(cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func normalizeCell(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	if _, ok := nullMarkers[trimmed]; ok {
		return nil
	}
	return trimmed
}
