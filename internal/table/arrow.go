package table

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"

	"chartviz/internal/model"
)

// ArrowTable adapts an Arrow table to model.Table. It owns one reference
// to the underlying table; call Release when done.
type ArrowTable struct {
	tbl   arrow.Table
	index map[string]int
}

// FromArrowRecord wraps a single record batch. The caller keeps its own
// reference to the record.
func FromArrowRecord(rec arrow.Record) *ArrowTable {
	return fromArrowTable(array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec}))
}

// FromArrowStream reads an Arrow IPC stream, with any number of record
// batches, into an ArrowTable.
func FromArrowStream(r io.Reader) (*ArrowTable, error) {
	rdr, err := ipc.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open arrow stream: %w", err)
	}
	defer rdr.Release()

	var recs []arrow.Record
	for rdr.Next() {
		rec := rdr.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := rdr.Err(); err != nil && err != io.EOF {
		for _, rec := range recs {
			rec.Release()
		}
		return nil, fmt.Errorf("failed to read arrow stream: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("arrow stream contains no record batches")
	}

	tbl := array.NewTableFromRecords(rdr.Schema(), recs)
	for _, rec := range recs {
		rec.Release()
	}
	return fromArrowTable(tbl), nil
}

func fromArrowTable(tbl arrow.Table) *ArrowTable {
	index := make(map[string]int, tbl.Schema().NumFields())
	for i, field := range tbl.Schema().Fields() {
		index[field.Name] = i
	}
	return &ArrowTable{tbl: tbl, index: index}
}

// Release drops the adapter's reference to the underlying table.
func (t *ArrowTable) Release() { t.tbl.Release() }

// ColumnNames returns the column names in schema order.
func (t *ArrowTable) ColumnNames() []string {
	fields := t.tbl.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name
	}
	return names
}

// ColumnType returns the declared type of the named column.
func (t *ArrowTable) ColumnType(name string) (model.DataType, bool) {
	i, ok := t.index[name]
	if !ok {
		return model.TypeString, false
	}
	return mapArrowType(t.tbl.Schema().Field(i).Type), true
}

// NumRows returns the number of rows.
func (t *ArrowTable) NumRows() int { return int(t.tbl.NumRows()) }

// NumCols returns the number of columns.
func (t *ArrowTable) NumCols() int { return int(t.tbl.NumCols()) }

// Cell returns the value at the given row position and column name.
// Columns may span several chunks; the row index is resolved against the
// chunk that holds it.
func (t *ArrowTable) Cell(row int, column string) (model.Value, error) {
	i, ok := t.index[column]
	if !ok {
		return model.Value{}, fmt.Errorf("unknown column: %s", column)
	}
	if row < 0 || row >= t.NumRows() {
		return model.Value{}, fmt.Errorf("row %d out of range [0, %d)", row, t.NumRows())
	}

	var chunk arrow.Array
	for _, c := range t.tbl.Column(i).Data().Chunks() {
		if row < c.Len() {
			chunk = c
			break
		}
		row -= c.Len()
	}
	if chunk == nil {
		return model.Value{}, fmt.Errorf("row %d beyond column chunks", row)
	}

	dt := mapArrowType(chunk.DataType())
	if chunk.IsNull(row) {
		return model.NullValue(dt), nil
	}

	switch arr := chunk.(type) {
	case *array.Boolean:
		return model.NewValue(arr.Value(row), model.TypeBool), nil
	case *array.Int8:
		return model.NewValue(int64(arr.Value(row)), model.TypeInt), nil
	case *array.Int16:
		return model.NewValue(int64(arr.Value(row)), model.TypeInt), nil
	case *array.Int32:
		return model.NewValue(int64(arr.Value(row)), model.TypeInt), nil
	case *array.Int64:
		return model.NewValue(arr.Value(row), model.TypeInt), nil
	case *array.Uint8:
		return model.NewValue(int64(arr.Value(row)), model.TypeInt), nil
	case *array.Uint16:
		return model.NewValue(int64(arr.Value(row)), model.TypeInt), nil
	case *array.Uint32:
		return model.NewValue(int64(arr.Value(row)), model.TypeInt), nil
	case *array.Uint64:
		return model.NewValue(int64(arr.Value(row)), model.TypeInt), nil
	case *array.Float16:
		return model.NewValue(float64(arr.Value(row).Float32()), model.TypeFloat), nil
	case *array.Float32:
		return model.NewValue(float64(arr.Value(row)), model.TypeFloat), nil
	case *array.Float64:
		return model.NewValue(arr.Value(row), model.TypeFloat), nil
	case *array.String:
		return model.NewValue(arr.Value(row), model.TypeString), nil
	case *array.LargeString:
		return model.NewValue(arr.Value(row), model.TypeString), nil
	case *array.Date32:
		return model.NewValue(arr.Value(row).ToTime(), model.TypeDate), nil
	case *array.Date64:
		return model.NewValue(arr.Value(row).ToTime(), model.TypeDate), nil
	case *array.Timestamp:
		unit := chunk.DataType().(*arrow.TimestampType).Unit
		return model.NewValue(arr.Value(row).ToTime(unit), model.TypeTimestamp), nil
	default:
		// Unsupported arrow types surface as their string rendering.
		return model.NewValue(chunk.ValueStr(row), model.TypeString), nil
	}
}

func mapArrowType(dt arrow.DataType) model.DataType {
	switch dt.ID() {
	case arrow.BOOL:
		return model.TypeBool
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return model.TypeInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return model.TypeFloat
	case arrow.DATE32, arrow.DATE64:
		return model.TypeDate
	case arrow.TIMESTAMP:
		return model.TypeTimestamp
	default:
		return model.TypeString
	}
}
