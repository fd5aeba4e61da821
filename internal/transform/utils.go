package transform

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"chartviz/internal/model"
)

// Normalize converts a cell into a JSON-safe scalar: nulls become nil,
// numeric and boolean cells keep their native kind, temporal cells are
// rendered as strings, everything else passes through unchanged. It is
// total over all representable cells and never fails.
func Normalize(v model.Value) interface{} {
	if v.IsNull || v.Raw == nil {
		return nil
	}
	switch v.Type {
	case model.TypeInt:
		if f, ok := v.Float(); ok {
			return int64(f)
		}
	case model.TypeFloat:
		if f, ok := v.Float(); ok {
			return f
		}
	case model.TypeBool:
		if b, ok := v.Raw.(bool); ok {
			return b
		}
	case model.TypeDate:
		if t, ok := v.Raw.(time.Time); ok {
			return t.Format("2006-01-02")
		}
	case model.TypeTimestamp:
		if t, ok := v.Raw.(time.Time); ok {
			return t.Format(time.RFC3339)
		}
	}
	return v.Raw
}

// Stringify renders a normalized cell for key positions (axis values,
// labels, funnel stages). Nulls render as "null".
func Stringify(v model.Value) string {
	n := Normalize(v)
	if n == nil {
		return "null"
	}
	if s, ok := n.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", n)
}

// FormatLabel converts a snake_case column name into a Title Case label:
// underscores become spaces and each word is capitalized.
func FormatLabel(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateColumns checks that every required column exists in the table.
// The returned error lists all absent names, in the order requested.
func ValidateColumns(t model.Table, required []string) error {
	present := make(map[string]bool)
	for _, name := range t.ColumnNames() {
		present[name] = true
	}
	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &missingColumnsError{columns: missing}
	}
	return nil
}

// NumericColumns returns the names of integer and floating-point columns,
// preserving table order. Boolean, text, and temporal columns are excluded.
func NumericColumns(t model.Table) []string {
	var numeric []string
	for _, name := range t.ColumnNames() {
		if dt, ok := t.ColumnType(name); ok && dt.IsNumeric() {
			numeric = append(numeric, name)
		}
	}
	return numeric
}

// ToNumeric coerces a column's cells to floats; cells that cannot be
// interpreted numerically become null.
func ToNumeric(t model.Table, column string) ([]model.Value, error) {
	if err := ValidateColumns(t, []string{column}); err != nil {
		return nil, err
	}
	out := make([]model.Value, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		v, err := t.Cell(row, column)
		if err != nil {
			return nil, err
		}
		if f, ok := v.Float(); ok {
			out[row] = model.NewValue(f, model.TypeFloat)
			continue
		}
		if s, ok := v.Raw.(string); ok && !v.IsNull {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				out[row] = model.NewValue(f, model.TypeFloat)
				continue
			}
		}
		out[row] = model.NullValue(model.TypeFloat)
	}
	return out, nil
}

// cellsAt fetches one row's values for the given columns.
func cellsAt(t model.Table, row int, columns ...string) ([]model.Value, error) {
	out := make([]model.Value, len(columns))
	for i, name := range columns {
		v, err := t.Cell(row, name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
