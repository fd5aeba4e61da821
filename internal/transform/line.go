package transform

import "chartviz/internal/model"

func transformLineChart(t model.Table, xColumn, yColumn, seriesName string) (*model.LineChartResult, error) {
	if err := ValidateColumns(t, []string{xColumn, yColumn}); err != nil {
		return nil, failure(model.ChartLine, t, err)
	}

	data := make([]model.LinePoint, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		vs, err := cellsAt(t, row, xColumn, yColumn)
		if err != nil {
			return nil, failure(model.ChartLine, t, err)
		}
		data = append(data, model.LinePoint{X: Stringify(vs[0]), Y: Normalize(vs[1])})
	}

	if seriesName == "" {
		seriesName = FormatLabel(yColumn)
	}
	return &model.LineChartResult{
		ChartType:  model.ChartLine,
		Data:       data,
		SeriesName: seriesName,
		XLabel:     FormatLabel(xColumn),
		YLabel:     FormatLabel(yColumn),
	}, nil
}

func transformMultiLineChart(t model.Table, xColumn string, yColumns, seriesNames []string) (*model.MultiLineChartResult, error) {
	if err := ValidateColumns(t, append([]string{xColumn}, yColumns...)); err != nil {
		return nil, failure(model.ChartMultiLine, t, err)
	}
	if len(seriesNames) > 0 && len(seriesNames) != len(yColumns) {
		return nil, &Error{
			Message:   "number of series_names must match number of y_columns",
			ChartType: model.ChartMultiLine,
		}
	}

	series := make([]model.LineSeries, 0, len(yColumns))
	for i, yColumn := range yColumns {
		data := make([]model.LinePoint, 0, t.NumRows())
		for row := 0; row < t.NumRows(); row++ {
			vs, err := cellsAt(t, row, xColumn, yColumn)
			if err != nil {
				return nil, failure(model.ChartMultiLine, t, err)
			}
			data = append(data, model.LinePoint{X: Stringify(vs[0]), Y: Normalize(vs[1])})
		}

		name := FormatLabel(yColumn)
		if len(seriesNames) > 0 {
			name = seriesNames[i]
		}
		series = append(series, model.LineSeries{Name: name, Data: data})
	}

	return &model.MultiLineChartResult{
		ChartType: model.ChartMultiLine,
		Series:    series,
		XLabel:    FormatLabel(xColumn),
	}, nil
}
