package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartviz/internal/model"
)

func TestLoadCSV(t *testing.T) {
	doc := strings.Join([]string{
		`vendor,revenue,orders,signup_date`,
		`acme,1200.5,34,2024-01-15`,
		`globex,800,21,2024-02-20`,
		`initech,,5,`,
	}, "\n")

	tbl, err := LoadCSV(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"vendor", "revenue", "orders", "signup_date"}, tbl.ColumnNames())
	assert.Equal(t, 3, tbl.NumRows())

	dt, ok := tbl.ColumnType("revenue")
	require.True(t, ok)
	assert.Equal(t, model.TypeFloat, dt)

	dt, ok = tbl.ColumnType("orders")
	require.True(t, ok)
	assert.Equal(t, model.TypeInt, dt)

	dt, ok = tbl.ColumnType("signup_date")
	require.True(t, ok)
	assert.Equal(t, model.TypeTimestamp, dt)

	v, err := tbl.Cell(0, "revenue")
	require.NoError(t, err)
	f, ok := v.Float()
	require.True(t, ok)
	assert.Equal(t, 1200.5, f)

	// Empty cells become nulls.
	v, err = tbl.Cell(2, "revenue")
	require.NoError(t, err)
	assert.True(t, v.IsNull)

	v, err = tbl.Cell(2, "signup_date")
	require.NoError(t, err)
	assert.True(t, v.IsNull)
}

func TestLoadCSVQuotedHeaders(t *testing.T) {
	doc := "\"Total Revenue\",\"region\"\n100,west\n"
	tbl, err := LoadCSV(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"Total Revenue", "region"}, tbl.ColumnNames())
}

func TestLoadCSVEmptyInput(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))
	assert.Error(t, err)
}
