package model

// Chart type discriminators carried in every chart result.
const (
	ChartKPICards   = "kpi_cards"
	ChartBar        = "bar_chart"
	ChartLine       = "line_chart"
	ChartMultiLine  = "multi_line_chart"
	ChartPie        = "pie_chart"
	ChartHeatmap    = "heatmap"
	ChartFunnel     = "funnel_chart"
	ChartStackedBar = "stacked_bar_chart"
	ChartDataTable  = "data_table"
	// The correlation variant reuses the heatmap discriminator but is
	// reported as its own chart type in failures.
	ChartCorrelationHeatmap = "correlation_heatmap"
)

// KPICard is a single dashboard metric card.
type KPICard struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// KPICardsResult is the kpi_cards chart result.
type KPICardsResult struct {
	ChartType string    `json:"chart_type"`
	Data      []KPICard `json:"data"`
}

// BarPoint is one bar of a bar chart.
type BarPoint struct {
	X     string      `json:"x"`
	Y     interface{} `json:"y"`
	Label string      `json:"label"`
}

// BarChartResult is the bar_chart result.
type BarChartResult struct {
	ChartType string     `json:"chart_type"`
	Data      []BarPoint `json:"data"`
	XLabel    string     `json:"x_label"`
	YLabel    string     `json:"y_label"`
}

// LinePoint is one point of a line series.
type LinePoint struct {
	X string      `json:"x"`
	Y interface{} `json:"y"`
}

// LineChartResult is the line_chart result.
type LineChartResult struct {
	ChartType  string      `json:"chart_type"`
	Data       []LinePoint `json:"data"`
	SeriesName string      `json:"series_name"`
	XLabel     string      `json:"x_label"`
	YLabel     string      `json:"y_label"`
}

// LineSeries is a named series of a multi-line chart.
type LineSeries struct {
	Name string      `json:"name"`
	Data []LinePoint `json:"data"`
}

// MultiLineChartResult is the multi_line_chart result.
type MultiLineChartResult struct {
	ChartType string       `json:"chart_type"`
	Series    []LineSeries `json:"series"`
	XLabel    string       `json:"x_label"`
}

// PieSlice is one slice of a pie chart.
type PieSlice struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// PieChartResult is the pie_chart result.
type PieChartResult struct {
	ChartType string     `json:"chart_type"`
	Data      []PieSlice `json:"data"`
}

// HeatmapCell is one cell of a heatmap.
type HeatmapCell struct {
	X     string      `json:"x"`
	Y     string      `json:"y"`
	Value interface{} `json:"value"`
}

// HeatmapResult is the heatmap result.
type HeatmapResult struct {
	ChartType  string        `json:"chart_type"`
	Data       []HeatmapCell `json:"data"`
	XLabel     string        `json:"x_label"`
	YLabel     string        `json:"y_label"`
	ValueLabel string        `json:"value_label"`
}

// CorrelationHeatmapResult is the pairwise-correlation heatmap result.
// Its chart_type is "heatmap" so heatmap renderers work unchanged.
type CorrelationHeatmapResult struct {
	ChartType  string        `json:"chart_type"`
	Data       []HeatmapCell `json:"data"`
	Metrics    []string      `json:"metrics"`
	XLabel     string        `json:"x_label"`
	YLabel     string        `json:"y_label"`
	ValueLabel string        `json:"value_label"`
}

// FunnelStage is one stage of a funnel chart, in table row order.
type FunnelStage struct {
	Stage string      `json:"stage"`
	Value interface{} `json:"value"`
}

// FunnelChartResult is the funnel_chart result.
type FunnelChartResult struct {
	ChartType string        `json:"chart_type"`
	Data      []FunnelStage `json:"data"`
}

// StackedBarChartResult is the stacked_bar_chart result. Each data entry
// maps "x" plus one key per stacked column to its normalized value.
type StackedBarChartResult struct {
	ChartType  string                   `json:"chart_type"`
	Data       []map[string]interface{} `json:"data"`
	Categories []string                 `json:"categories"`
	XLabel     string                   `json:"x_label"`
}

// TableColumn describes one column of a data table.
type TableColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Pagination is the page bookkeeping merged into a data table result.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// DataTableResult is the data_table result: the full column set plus the
// normalized rows of the requested page.
type DataTableResult struct {
	ChartType string                   `json:"chart_type"`
	Columns   []TableColumn            `json:"columns"`
	Rows      []map[string]interface{} `json:"rows"`
	Pagination
}
