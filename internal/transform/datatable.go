package transform

import "chartviz/internal/model"

func transformDataTable(t model.Table, page, pageSize int) (*model.DataTableResult, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = 50
	}
	slice, meta := Paginate(t, page, pageSize)

	// The column set is always the full table, independent of the page.
	columns := make([]model.TableColumn, 0, t.NumCols())
	for _, name := range t.ColumnNames() {
		columns = append(columns, model.TableColumn{Key: name, Label: FormatLabel(name)})
	}

	rows := make([]map[string]interface{}, 0, slice.NumRows())
	for row := 0; row < slice.NumRows(); row++ {
		rowData := make(map[string]interface{}, t.NumCols())
		for _, name := range t.ColumnNames() {
			v, err := slice.Cell(row, name)
			if err != nil {
				return nil, failure(model.ChartDataTable, t, err)
			}
			rowData[name] = Normalize(v)
		}
		rows = append(rows, rowData)
	}

	return &model.DataTableResult{
		ChartType:  model.ChartDataTable,
		Columns:    columns,
		Rows:       rows,
		Pagination: meta,
	}, nil
}
