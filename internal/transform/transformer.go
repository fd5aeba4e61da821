package transform

import "chartviz/internal/model"

// Transformer converts tables into chart-ready, JSON-safe structures.
// It is stateless; each method is a one-shot, independent transform that
// either fully succeeds or returns a *Error.
type Transformer struct{}

// New creates a Transformer.
func New() *Transformer { return &Transformer{} }

// KPICards transforms a single-row table into dashboard metric cards.
func (tr *Transformer) KPICards(t model.Table) (*model.KPICardsResult, error) {
	return transformKPICards(t)
}

// BarChart transforms a table into bar chart data. labelColumn defaults
// to xColumn when empty.
func (tr *Transformer) BarChart(t model.Table, xColumn, yColumn, labelColumn string) (*model.BarChartResult, error) {
	return transformBarChart(t, xColumn, yColumn, labelColumn)
}

// LineChart transforms a table into line chart data. seriesName defaults
// to the formatted yColumn label when empty.
func (tr *Transformer) LineChart(t model.Table, xColumn, yColumn, seriesName string) (*model.LineChartResult, error) {
	return transformLineChart(t, xColumn, yColumn, seriesName)
}

// MultiLineChart transforms a table into one line series per y column.
// seriesNames is optional; when given its length must match yColumns.
func (tr *Transformer) MultiLineChart(t model.Table, xColumn string, yColumns, seriesNames []string) (*model.MultiLineChartResult, error) {
	return transformMultiLineChart(t, xColumn, yColumns, seriesNames)
}

// PieChart transforms a table into pie chart data.
func (tr *Transformer) PieChart(t model.Table, labelColumn, valueColumn string) (*model.PieChartResult, error) {
	return transformPieChart(t, labelColumn, valueColumn)
}

// Heatmap transforms a table into 2D intensity heatmap data.
func (tr *Transformer) Heatmap(t model.Table, xColumn, yColumn, valueColumn string) (*model.HeatmapResult, error) {
	return transformHeatmap(t, xColumn, yColumn, valueColumn)
}

// FunnelChart transforms a table into funnel chart data, in table row
// order; the caller supplies stages in pipeline order.
func (tr *Transformer) FunnelChart(t model.Table, stageColumn, valueColumn string) (*model.FunnelChartResult, error) {
	return transformFunnelChart(t, stageColumn, valueColumn)
}

// StackedBarChart transforms a table into stacked bar chart data.
// categoryNames is optional; when given its length must match yColumns.
func (tr *Transformer) StackedBarChart(t model.Table, xColumn string, yColumns, categoryNames []string) (*model.StackedBarChartResult, error) {
	return transformStackedBarChart(t, xColumn, yColumns, categoryNames)
}

// DataTable transforms a table into a paginated data table. page and
// pageSize default to 1 and 50 when zero.
func (tr *Transformer) DataTable(t model.Table, page, pageSize int) (*model.DataTableResult, error) {
	return transformDataTable(t, page, pageSize)
}

// CorrelationHeatmap transforms a table into a pairwise Pearson
// correlation heatmap. When metrics is nil the table's numeric columns
// are used.
func (tr *Transformer) CorrelationHeatmap(t model.Table, metrics []string) (*model.CorrelationHeatmapResult, error) {
	return transformCorrelationHeatmap(t, metrics)
}
