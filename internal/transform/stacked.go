package transform

import "chartviz/internal/model"

func transformStackedBarChart(t model.Table, xColumn string, yColumns, categoryNames []string) (*model.StackedBarChartResult, error) {
	if err := ValidateColumns(t, append([]string{xColumn}, yColumns...)); err != nil {
		return nil, failure(model.ChartStackedBar, t, err)
	}
	if len(categoryNames) > 0 && len(categoryNames) != len(yColumns) {
		return nil, &Error{
			Message:   "number of category_names must match number of y_columns",
			ChartType: model.ChartStackedBar,
		}
	}

	data := make([]map[string]interface{}, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		x, err := t.Cell(row, xColumn)
		if err != nil {
			return nil, failure(model.ChartStackedBar, t, err)
		}
		point := map[string]interface{}{"x": Stringify(x)}
		for _, yColumn := range yColumns {
			v, err := t.Cell(row, yColumn)
			if err != nil {
				return nil, failure(model.ChartStackedBar, t, err)
			}
			point[yColumn] = Normalize(v)
		}
		data = append(data, point)
	}

	categories := make([]string, len(yColumns))
	for i, yColumn := range yColumns {
		if len(categoryNames) > 0 {
			categories[i] = categoryNames[i]
		} else {
			categories[i] = FormatLabel(yColumn)
		}
	}

	return &model.StackedBarChartResult{
		ChartType:  model.ChartStackedBar,
		Data:       data,
		Categories: categories,
		XLabel:     FormatLabel(xColumn),
	}, nil
}
