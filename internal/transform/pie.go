package transform

import "chartviz/internal/model"

func transformPieChart(t model.Table, labelColumn, valueColumn string) (*model.PieChartResult, error) {
	if err := ValidateColumns(t, []string{labelColumn, valueColumn}); err != nil {
		return nil, failure(model.ChartPie, t, err)
	}

	data := make([]model.PieSlice, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		vs, err := cellsAt(t, row, labelColumn, valueColumn)
		if err != nil {
			return nil, failure(model.ChartPie, t, err)
		}
		data = append(data, model.PieSlice{Label: Stringify(vs[0]), Value: Normalize(vs[1])})
	}

	return &model.PieChartResult{ChartType: model.ChartPie, Data: data}, nil
}
