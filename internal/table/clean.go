package table

import (
	"strings"

	"chartviz/internal/model"
)

// CleanColumns copies a table into a MemTable whose column names are
// lowercased with spaces replaced by underscores. The input is not
// modified.
func CleanColumns(t model.Table) (*MemTable, error) {
	names := t.ColumnNames()
	cleaned := make([]string, len(names))
	types := make([]model.DataType, len(names))
	for i, name := range names {
		cleaned[i] = strings.ReplaceAll(strings.ToLower(name), " ", "_")
		dt, _ := t.ColumnType(name)
		types[i] = dt
	}

	out, err := New(cleaned, types)
	if err != nil {
		return nil, err
	}
	for row := 0; row < t.NumRows(); row++ {
		cells := make([]model.Value, len(names))
		for i, name := range names {
			v, err := t.Cell(row, name)
			if err != nil {
				return nil, err
			}
			cells[i] = v
		}
		if err := out.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return out, nil
}
