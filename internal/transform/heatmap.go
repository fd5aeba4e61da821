package transform

import (
	"math"

	"chartviz/internal/model"
)

func transformHeatmap(t model.Table, xColumn, yColumn, valueColumn string) (*model.HeatmapResult, error) {
	if err := ValidateColumns(t, []string{xColumn, yColumn, valueColumn}); err != nil {
		return nil, failure(model.ChartHeatmap, t, err)
	}

	data := make([]model.HeatmapCell, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		vs, err := cellsAt(t, row, xColumn, yColumn, valueColumn)
		if err != nil {
			return nil, failure(model.ChartHeatmap, t, err)
		}
		data = append(data, model.HeatmapCell{
			X:     Stringify(vs[0]),
			Y:     Stringify(vs[1]),
			Value: Normalize(vs[2]),
		})
	}

	return &model.HeatmapResult{
		ChartType:  model.ChartHeatmap,
		Data:       data,
		XLabel:     FormatLabel(xColumn),
		YLabel:     FormatLabel(yColumn),
		ValueLabel: FormatLabel(valueColumn),
	}, nil
}

func transformCorrelationHeatmap(t model.Table, metrics []string) (*model.CorrelationHeatmapResult, error) {
	if metrics == nil {
		metrics = NumericColumns(t)
	}
	if len(metrics) < 2 {
		return nil, &Error{
			Message:   "Need at least 2 numeric columns for correlation",
			ChartType: model.ChartCorrelationHeatmap,
			Shape:     shapeOf(t),
		}
	}
	if err := ValidateColumns(t, metrics); err != nil {
		return nil, failure(model.ChartCorrelationHeatmap, t, err)
	}

	cols := make(map[string][]model.Value, len(metrics))
	for _, m := range metrics {
		vals := make([]model.Value, t.NumRows())
		for row := 0; row < t.NumRows(); row++ {
			v, err := t.Cell(row, m)
			if err != nil {
				return nil, failure(model.ChartCorrelationHeatmap, t, err)
			}
			vals[row] = v
		}
		cols[m] = vals
	}

	// Both pair orders are emitted: len(metrics)^2 cells, 1.0 diagonal.
	data := make([]model.HeatmapCell, 0, len(metrics)*len(metrics))
	for _, xMetric := range metrics {
		for _, yMetric := range metrics {
			var value interface{}
			if r, ok := pearson(cols[yMetric], cols[xMetric]); ok {
				value = r
			}
			data = append(data, model.HeatmapCell{X: xMetric, Y: yMetric, Value: value})
		}
	}

	return &model.CorrelationHeatmapResult{
		ChartType:  model.ChartHeatmap,
		Data:       data,
		Metrics:    metrics,
		XLabel:     "Metrics",
		YLabel:     "Metrics",
		ValueLabel: "Correlation Coefficient",
	}, nil
}

// pearson computes the Pearson correlation coefficient over the rows
// where both cells are non-null numeric. ok is false when fewer than two
// paired rows exist or either side has zero variance (the correlation is
// undefined and normalizes to null).
func pearson(xs, ys []model.Value) (float64, bool) {
	var px, py []float64
	for i := range xs {
		fx, okx := xs[i].Float()
		fy, oky := ys[i].Float()
		if okx && oky {
			px = append(px, fx)
			py = append(py, fy)
		}
	}
	if len(px) < 2 {
		return 0, false
	}

	n := float64(len(px))
	var sx, sy float64
	for i := range px {
		sx += px[i]
		sy += py[i]
	}
	mx, my := sx/n, sy/n

	var cov, vx, vy float64
	for i := range px {
		dx, dy := px[i]-mx, py[i]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0, false
	}
	return cov / math.Sqrt(vx*vy), true
}
