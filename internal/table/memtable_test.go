package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartviz/internal/model"
)

func TestNew(t *testing.T) {
	tbl, err := New([]string{"a", "b"}, []model.DataType{model.TypeInt, model.TypeString})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.ColumnNames())
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())

	_, err = New([]string{"a", "a"}, []model.DataType{model.TypeInt, model.TypeInt})
	assert.Error(t, err, "duplicate column names")

	_, err = New([]string{"a"}, []model.DataType{model.TypeInt, model.TypeInt})
	assert.Error(t, err, "column/type count mismatch")
}

func TestAppendRowAndCell(t *testing.T) {
	tbl, err := New([]string{"name", "score"}, []model.DataType{model.TypeString, model.TypeFloat})
	require.NoError(t, err)

	require.NoError(t, tbl.AppendRow([]model.Value{
		model.NewValue("alice", model.TypeString),
		model.NewValue(9.5, model.TypeFloat),
	}))

	v, err := tbl.Cell(0, "score")
	require.NoError(t, err)
	f, ok := v.Float()
	require.True(t, ok)
	assert.Equal(t, 9.5, f)

	_, err = tbl.Cell(1, "score")
	assert.Error(t, err, "row out of range")
	_, err = tbl.Cell(0, "missing")
	assert.Error(t, err, "unknown column")

	err = tbl.AppendRow([]model.Value{model.NewValue("bob", model.TypeString)})
	assert.Error(t, err, "cell count mismatch")
}

func TestFromRecordsTypeInference(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	tbl, err := FromRecords(
		[]string{"ints", "floats", "mixed_num", "bools", "times", "strings", "mixed"},
		[]map[string]interface{}{
			{"ints": 1, "floats": 1.5, "mixed_num": 1, "bools": true, "times": ts, "strings": "x", "mixed": "x"},
			{"ints": 2, "floats": 2.5, "mixed_num": 2.5, "bools": false, "times": ts, "strings": "y", "mixed": 3},
		},
	)
	require.NoError(t, err)

	expect := map[string]model.DataType{
		"ints":      model.TypeInt,
		"floats":    model.TypeFloat,
		"mixed_num": model.TypeFloat,
		"bools":     model.TypeBool,
		"times":     model.TypeTimestamp,
		"strings":   model.TypeString,
		"mixed":     model.TypeString,
	}
	for name, want := range expect {
		dt, ok := tbl.ColumnType(name)
		require.True(t, ok, name)
		assert.Equal(t, want, dt, name)
	}

	// Integer columns come back as int64 regardless of input width.
	v, err := tbl.Cell(0, "ints")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Raw)

	// Mixed non-string cells are stringified for string columns.
	v, err = tbl.Cell(1, "mixed")
	require.NoError(t, err)
	assert.Equal(t, "3", v.Raw)
}

func TestFromRecordsColumnUnion(t *testing.T) {
	tbl, err := FromRecords(nil, []map[string]interface{}{
		{"b": 1, "a": 2},
		{"c": 3},
	})
	require.NoError(t, err)

	// Without explicit columns the sorted union of keys is used.
	assert.Equal(t, []string{"a", "b", "c"}, tbl.ColumnNames())

	v, err := tbl.Cell(1, "a")
	require.NoError(t, err)
	assert.True(t, v.IsNull, "absent cells become null")
}

func TestReconstruct(t *testing.T) {
	types := []model.DataType{model.TypeInt, model.TypeString, model.TypeTimestamp}
	tbl, err := Reconstruct(
		[]string{"id", "name", "at"},
		types,
		[][]interface{}{
			{float64(7), "alice", "2024-01-02T10:00:00Z"},
			{nil, "bob", nil},
		},
	)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.NumRows())

	// JSON decoding turns ints into float64; reconstruction restores int64.
	v, err := tbl.Cell(0, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Raw)

	v, err = tbl.Cell(0, "at")
	require.NoError(t, err)
	ts, ok := v.Raw.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())

	v, err = tbl.Cell(1, "id")
	require.NoError(t, err)
	assert.True(t, v.IsNull)

	_, err = Reconstruct([]string{"a", "b"}, []model.DataType{model.TypeInt, model.TypeInt},
		[][]interface{}{{1}})
	assert.Error(t, err, "stored row width mismatch")
}

func TestCleanColumns(t *testing.T) {
	tbl, err := FromRecords(
		[]string{"Total Revenue", "Order Count"},
		[]map[string]interface{}{{"Total Revenue": 10.5, "Order Count": 3}},
	)
	require.NoError(t, err)

	cleaned, err := CleanColumns(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"total_revenue", "order_count"}, cleaned.ColumnNames())
	assert.Equal(t, []string{"Total Revenue", "Order Count"}, tbl.ColumnNames(), "input unchanged")

	v, err := cleaned.Cell(0, "total_revenue")
	require.NoError(t, err)
	f, ok := v.Float()
	require.True(t, ok)
	assert.Equal(t, 10.5, f)
}
