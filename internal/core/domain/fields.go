package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of every campaign date.
const DateLayout = "2006-01-02"

// dateLayouts are accepted on input in addition to DateLayout. Spreadsheets
// tend to hand dates back in whatever display format the cell carried.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01-02-06",
	"1/2/2006",
	"1/2/06",
}

// fieldReader pulls typed values out of a loosely typed map. The first
// failure is kept in the shared state and every later read becomes a no-op,
// so a constructor can read all of its fields and check the error once.
type fieldReader struct {
	src   map[string]any
	path  string
	state *readState
}

type readState struct {
	err error
}

func newFieldReader(src map[string]any) *fieldReader {
	return &fieldReader{src: src, state: &readState{}}
}

func (r *fieldReader) err() error { return r.state.err }

func (r *fieldReader) fail(key, format string, args ...any) {
	if r.state.err == nil {
		r.state.err = invalid(r.path+key, format, args...)
	}
}

// lookup returns the raw value under key. A nil value counts as absent.
func (r *fieldReader) lookup(key string) (any, bool) {
	if r.state.err != nil {
		return nil, false
	}
	v, ok := r.src[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *fieldReader) required(key string) (any, bool) {
	v, ok := r.lookup(key)
	if !ok && r.state.err == nil {
		r.fail(key, "required field is missing")
	}
	return v, ok
}

func (r *fieldReader) str(key string) string {
	v, ok := r.required(key)
	if !ok {
		return ""
	}
	s, err := scalarString(v)
	if err != nil {
		r.fail(key, "%v", err)
	}
	return s
}

func (r *fieldReader) optStr(key string) *string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	s, err := scalarString(v)
	if err != nil {
		r.fail(key, "%v", err)
		return nil
	}
	return &s
}

func (r *fieldReader) integer(key string) int64 {
	v, ok := r.required(key)
	if !ok {
		return 0
	}
	n, err := toInt(v)
	if err != nil {
		r.fail(key, "%v", err)
	}
	return n
}

func (r *fieldReader) optInteger(key string) (int64, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return 0, false
	}
	n, err := toInt(v)
	if err != nil {
		r.fail(key, "%v", err)
		return 0, false
	}
	return n, true
}

func (r *fieldReader) number(key string) float64 {
	v, ok := r.required(key)
	if !ok {
		return 0
	}
	f, err := toFloat(v)
	if err != nil {
		r.fail(key, "%v", err)
	}
	return f
}

func (r *fieldReader) optNumber(key string) (float64, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return 0, false
	}
	f, err := toFloat(v)
	if err != nil {
		r.fail(key, "%v", err)
		return 0, false
	}
	return f, true
}

func (r *fieldReader) date(key string) time.Time {
	s := r.str(key)
	if r.state.err != nil {
		return time.Time{}
	}
	t, err := parseDate(s)
	if err != nil {
		r.fail(key, "%v", err)
	}
	return t
}

func (r *fieldReader) optDate(key string) *time.Time {
	s := r.optStr(key)
	if s == nil || r.state.err != nil {
		return nil
	}
	t, err := parseDate(*s)
	if err != nil {
		r.fail(key, "%v", err)
		return nil
	}
	return &t
}

// object descends into a nested document.
func (r *fieldReader) object(key string) *fieldReader {
	child := &fieldReader{src: map[string]any{}, path: r.path + key + ".", state: r.state}
	v, ok := r.required(key)
	if !ok {
		return child
	}
	m, ok := asMap(v)
	if !ok {
		r.fail(key, "expected an object, got %T", v)
		return child
	}
	child.src = m
	return child
}

// array descends into a nested list of documents.
func (r *fieldReader) array(key string) []*fieldReader {
	v, ok := r.required(key)
	if !ok {
		return nil
	}
	items, ok := asSlice(v)
	if !ok {
		r.fail(key, "expected an array, got %T", v)
		return nil
	}
	out := make([]*fieldReader, 0, len(items))
	for i, item := range items {
		m, ok := asMap(item)
		if !ok {
			r.fail(fmt.Sprintf("%s[%d]", key, i), "expected an object, got %T", item)
			return nil
		}
		out = append(out, &fieldReader{src: m, path: fmt.Sprintf("%s%s[%d].", r.path, key, i), state: r.state})
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	default:
		return nil, false
	}
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []Document:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	default:
		return nil, false
	}
}

func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("expected a scalar, got %T", v)
	}
}

func toFloat(v any) (float64, error) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", t.String())
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", t)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a finite number", f)
	}
	return f, nil
}

// toInt accepts integral floats such as "1200.0", which is how spreadsheet
// tools export integer columns that contain blanks.
func toInt(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case int32:
		return int64(t), nil
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("%v is not an integer", v)
	}
	return int64(f), nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return dateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a date (want YYYY-MM-DD)", s)
}

func formatDate(t time.Time) string { return t.Format(DateLayout) }

// dateOnly keeps the calendar day of t, as written in t's own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
