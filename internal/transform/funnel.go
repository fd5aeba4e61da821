package transform

import "chartviz/internal/model"

func transformFunnelChart(t model.Table, stageColumn, valueColumn string) (*model.FunnelChartResult, error) {
	if err := ValidateColumns(t, []string{stageColumn, valueColumn}); err != nil {
		return nil, failure(model.ChartFunnel, t, err)
	}

	// Stages are emitted in table row order; no reordering happens here.
	data := make([]model.FunnelStage, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		vs, err := cellsAt(t, row, stageColumn, valueColumn)
		if err != nil {
			return nil, failure(model.ChartFunnel, t, err)
		}
		data = append(data, model.FunnelStage{Stage: Stringify(vs[0]), Value: Normalize(vs[1])})
	}

	return &model.FunnelChartResult{ChartType: model.ChartFunnel, Data: data}, nil
}
