package transform

import "chartviz/internal/model"

func transformBarChart(t model.Table, xColumn, yColumn, labelColumn string) (*model.BarChartResult, error) {
	if err := ValidateColumns(t, []string{xColumn, yColumn}); err != nil {
		return nil, failure(model.ChartBar, t, err)
	}
	if labelColumn == "" {
		labelColumn = xColumn
	} else if err := ValidateColumns(t, []string{labelColumn}); err != nil {
		return nil, failure(model.ChartBar, t, err)
	}

	data := make([]model.BarPoint, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		vs, err := cellsAt(t, row, xColumn, yColumn, labelColumn)
		if err != nil {
			return nil, failure(model.ChartBar, t, err)
		}
		data = append(data, model.BarPoint{
			X:     Stringify(vs[0]),
			Y:     Normalize(vs[1]),
			Label: Stringify(vs[2]),
		})
	}

	return &model.BarChartResult{
		ChartType: model.ChartBar,
		Data:      data,
		XLabel:    FormatLabel(xColumn),
		YLabel:    FormatLabel(yColumn),
	}, nil
}
