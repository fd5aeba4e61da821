package table

import (
	"fmt"
	"sort"
	"time"

	"chartviz/internal/model"
)

// MemTable is the in-memory table engine: an ordered set of named, typed
// columns over row-major storage. It implements model.Table.
type MemTable struct {
	names []string
	index map[string]int
	types []model.DataType
	rows  [][]model.Value
}

// New creates an empty MemTable with the given column names and types.
func New(columns []string, types []model.DataType) (*MemTable, error) {
	if len(columns) != len(types) {
		return nil, fmt.Errorf("column/type count mismatch: %d vs %d", len(columns), len(types))
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column name: %s", name)
		}
		index[name] = i
	}
	return &MemTable{
		names: append([]string(nil), columns...),
		index: index,
		types: append([]model.DataType(nil), types...),
	}, nil
}

// AppendRow adds one row. The cell count must match the column count.
func (t *MemTable) AppendRow(cells []model.Value) error {
	if len(cells) != len(t.names) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.names))
	}
	t.rows = append(t.rows, append([]model.Value(nil), cells...))
	return nil
}

// ColumnNames returns the column names in table order.
func (t *MemTable) ColumnNames() []string {
	return append([]string(nil), t.names...)
}

// ColumnType returns the declared type of the named column.
func (t *MemTable) ColumnType(name string) (model.DataType, bool) {
	i, ok := t.index[name]
	if !ok {
		return model.TypeString, false
	}
	return t.types[i], true
}

// NumRows returns the number of rows.
func (t *MemTable) NumRows() int { return len(t.rows) }

// NumCols returns the number of columns.
func (t *MemTable) NumCols() int { return len(t.names) }

// Cell returns the value at the given row position and column name.
func (t *MemTable) Cell(row int, column string) (model.Value, error) {
	if row < 0 || row >= len(t.rows) {
		return model.Value{}, fmt.Errorf("row %d out of range [0, %d)", row, len(t.rows))
	}
	i, ok := t.index[column]
	if !ok {
		return model.Value{}, fmt.Errorf("unknown column: %s", column)
	}
	return t.rows[row][i], nil
}

// FromRecords builds a MemTable from loosely-typed records, inferring a
// type per column. When columns is nil, the sorted union of record keys is
// used. Cells absent from a record become null.
func FromRecords(columns []string, records []map[string]interface{}) (*MemTable, error) {
	if columns == nil {
		seen := make(map[string]bool)
		for _, rec := range records {
			for k := range rec {
				if !seen[k] {
					seen[k] = true
					columns = append(columns, k)
				}
			}
		}
		sort.Strings(columns)
	}

	types := make([]model.DataType, len(columns))
	for i, name := range columns {
		raws := make([]interface{}, 0, len(records))
		for _, rec := range records {
			raws = append(raws, rec[name])
		}
		types[i] = inferColumnType(raws)
	}

	t, err := New(columns, types)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		cells := make([]model.Value, len(columns))
		for i, name := range columns {
			cells[i] = coerce(rec[name], types[i])
		}
		if err := t.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Reconstruct rebuilds a MemTable from a persisted dataset: column names,
// declared types, and JSON-decoded row values.
func Reconstruct(columns []string, types []model.DataType, rows [][]interface{}) (*MemTable, error) {
	t, err := New(columns, types)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("stored row has %d cells, expected %d", len(row), len(columns))
		}
		cells := make([]model.Value, len(columns))
		for i, raw := range row {
			cells[i] = coerce(raw, types[i])
		}
		if err := t.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// inferColumnType resolves a column type from its raw values: all-integer
// columns are int, any float promotes to float, uniform bools and temporal
// values keep their kind, anything mixed or unknown is string.
func inferColumnType(raws []interface{}) model.DataType {
	var sawInt, sawFloat, sawBool, sawTime, sawOther bool
	for _, raw := range raws {
		switch raw.(type) {
		case nil:
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			sawInt = true
		case float32, float64:
			sawFloat = true
		case bool:
			sawBool = true
		case time.Time:
			sawTime = true
		default:
			sawOther = true
		}
	}
	switch {
	case sawOther:
		return model.TypeString
	case sawTime && !sawInt && !sawFloat && !sawBool:
		return model.TypeTimestamp
	case sawBool && !sawInt && !sawFloat && !sawTime:
		return model.TypeBool
	case sawFloat && !sawBool && !sawTime:
		return model.TypeFloat
	case sawInt && !sawBool && !sawTime:
		return model.TypeInt
	default:
		return model.TypeString
	}
}

// coerce converts a raw scalar to a Value of the column's declared type.
// Values that cannot be represented in the declared type become null.
func coerce(raw interface{}, dt model.DataType) model.Value {
	if raw == nil {
		return model.NullValue(dt)
	}
	switch dt {
	case model.TypeInt:
		if f, ok := asFloat(raw); ok {
			return model.NewValue(int64(f), dt)
		}
	case model.TypeFloat:
		if f, ok := asFloat(raw); ok {
			return model.NewValue(f, dt)
		}
	case model.TypeBool:
		if b, ok := raw.(bool); ok {
			return model.NewValue(b, dt)
		}
	case model.TypeDate, model.TypeTimestamp:
		switch v := raw.(type) {
		case time.Time:
			return model.NewValue(v, dt)
		case string:
			if ts, err := time.Parse(time.RFC3339, v); err == nil {
				return model.NewValue(ts, dt)
			}
			if ts, err := time.Parse("2006-01-02", v); err == nil {
				return model.NewValue(ts, dt)
			}
		}
	case model.TypeString:
		if s, ok := raw.(string); ok {
			return model.NewValue(s, dt)
		}
		return model.NewValue(fmt.Sprintf("%v", raw), dt)
	}
	return model.NullValue(dt)
}

func asFloat(raw interface{}) (float64, bool) {
	switch n := raw.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
