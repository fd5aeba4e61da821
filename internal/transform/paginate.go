package transform

import (
	"fmt"

	"chartviz/internal/model"
)

// Paginate slices a table into one page and computes pagination metadata.
// Out-of-range pages are clamped into [1, max(1, total_pages)]; the last
// page may be short. It never fails: non-positive inputs are clamped.
func Paginate(t model.Table, page, pageSize int) (model.Table, model.Pagination) {
	if pageSize < 1 {
		pageSize = 1
	}
	total := t.NumRows()
	totalPages := (total + pageSize - 1) / pageSize

	maxPage := totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	meta := model.Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
	return &pageView{Table: t, start: start, end: end}, meta
}

// pageView is a zero-copy row-range window over another table.
type pageView struct {
	model.Table
	start, end int
}

func (p *pageView) NumRows() int { return p.end - p.start }

func (p *pageView) Cell(row int, column string) (model.Value, error) {
	if row < 0 || row >= p.NumRows() {
		return model.Value{}, fmt.Errorf("row %d out of range [0, %d)", row, p.NumRows())
	}
	return p.Table.Cell(p.start+row, column)
}
