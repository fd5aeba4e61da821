package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartviz/internal/model"
	"chartviz/internal/table"
)

func TestFormatLabel(t *testing.T) {
	cases := map[string]string{
		"revenue":          "Revenue",
		"avg_days_to_ship": "Avg Days To Ship",
		"total_orders":     "Total Orders",
		"x":                "X",
		"":                 "",
		"q3_sales":         "Q3 Sales",
		"already Spaced":   "Already Spaced",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatLabel(in), "input %q", in)
	}
}

func TestNormalize(t *testing.T) {
	ts := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		in   model.Value
		want interface{}
	}{
		"null":      {model.NullValue(model.TypeFloat), nil},
		"int":       {model.NewValue(int64(42), model.TypeInt), int64(42)},
		"float":     {model.NewValue(3.5, model.TypeFloat), 3.5},
		"bool":      {model.NewValue(true, model.TypeBool), true},
		"string":    {model.NewValue("hello", model.TypeString), "hello"},
		"date":      {model.NewValue(ts, model.TypeDate), "2024-05-17"},
		"timestamp": {model.NewValue(ts, model.TypeTimestamp), "2024-05-17T10:30:00Z"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "null", Stringify(model.NullValue(model.TypeString)))
	assert.Equal(t, "west", Stringify(model.NewValue("west", model.TypeString)))
	assert.Equal(t, "42", Stringify(model.NewValue(int64(42), model.TypeInt)))
	assert.Equal(t, "true", Stringify(model.NewValue(true, model.TypeBool)))
}

func TestValidateColumns(t *testing.T) {
	tbl, err := table.FromRecords([]string{"region", "revenue"}, []map[string]interface{}{
		{"region": "west", "revenue": 100},
	})
	require.NoError(t, err)

	assert.NoError(t, ValidateColumns(tbl, []string{"region", "revenue"}))

	err = ValidateColumns(tbl, []string{"region", "profit", "margin"})
	require.Error(t, err)
	assert.Equal(t, "missing required columns: profit, margin", err.Error())
}

func TestNumericColumns(t *testing.T) {
	tbl, err := table.FromRecords(
		[]string{"name", "orders", "revenue", "active"},
		[]map[string]interface{}{
			{"name": "a", "orders": 5, "revenue": 12.5, "active": true},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"orders", "revenue"}, NumericColumns(tbl))
}

func TestToNumeric(t *testing.T) {
	tbl, err := table.FromRecords([]string{"raw"}, []map[string]interface{}{
		{"raw": "12.5"},
		{"raw": " 7 "},
		{"raw": "n/a"},
		{"raw": nil},
	})
	require.NoError(t, err)

	vals, err := ToNumeric(tbl, "raw")
	require.NoError(t, err)
	require.Len(t, vals, 4)

	f, ok := vals[0].Float()
	require.True(t, ok)
	assert.Equal(t, 12.5, f)

	f, ok = vals[1].Float()
	require.True(t, ok)
	assert.Equal(t, 7.0, f)

	assert.True(t, vals[2].IsNull)
	assert.True(t, vals[3].IsNull)

	_, err = ToNumeric(tbl, "missing")
	assert.Error(t, err)
}
