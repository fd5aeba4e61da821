package transform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartviz/internal/table"
)

func rowsTable(t *testing.T, n int) *table.MemTable {
	t.Helper()
	records := make([]map[string]interface{}, n)
	for i := 0; i < n; i++ {
		records[i] = map[string]interface{}{"id": i + 1, "name": fmt.Sprintf("row-%d", i+1)}
	}
	tbl, err := table.FromRecords([]string{"id", "name"}, records)
	require.NoError(t, err)
	return tbl
}

func TestPaginate(t *testing.T) {
	tbl := rowsTable(t, 10)

	t.Run("first page", func(t *testing.T) {
		page, meta := Paginate(tbl, 1, 3)
		assert.Equal(t, 3, page.NumRows())
		assert.Equal(t, 10, meta.Total)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 3, meta.PageSize)
		assert.Equal(t, 4, meta.TotalPages)

		v, err := page.Cell(0, "id")
		require.NoError(t, err)
		assert.Equal(t, int64(1), Normalize(v))
	})

	t.Run("last page is short", func(t *testing.T) {
		page, meta := Paginate(tbl, 4, 3)
		assert.Equal(t, 1, page.NumRows())
		assert.Equal(t, 4, meta.Page)

		v, err := page.Cell(0, "id")
		require.NoError(t, err)
		assert.Equal(t, int64(10), Normalize(v))
	})

	t.Run("page beyond range clamps to last", func(t *testing.T) {
		page, meta := Paginate(tbl, 10, 5)
		assert.Equal(t, 2, meta.Page)
		assert.Equal(t, 5, page.NumRows())
		assert.Equal(t, 2, meta.TotalPages)
	})

	t.Run("non-positive inputs clamp", func(t *testing.T) {
		page, meta := Paginate(tbl, 0, 0)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 1, meta.PageSize)
		assert.Equal(t, 10, meta.TotalPages)
		assert.Equal(t, 1, page.NumRows())
	})

	t.Run("empty table", func(t *testing.T) {
		empty := rowsTable(t, 0)
		page, meta := Paginate(empty, 3, 5)
		assert.Equal(t, 0, page.NumRows())
		assert.Equal(t, 0, meta.Total)
		assert.Equal(t, 0, meta.TotalPages)
		assert.Equal(t, 1, meta.Page)
	})

	t.Run("page view rejects out of range rows", func(t *testing.T) {
		page, _ := Paginate(tbl, 1, 3)
		_, err := page.Cell(3, "id")
		assert.Error(t, err)
		_, err = page.Cell(-1, "id")
		assert.Error(t, err)
	})
}
