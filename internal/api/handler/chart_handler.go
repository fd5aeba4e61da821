package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"chartviz/internal/model"
	"chartviz/internal/store"
	"chartviz/internal/table"
	"chartviz/internal/transform"
	"chartviz/pkg/utils"
)

var transformer = transform.New()

// createDatasetPayload is the JSON body accepted by CreateDataset.
type createDatasetPayload struct {
	Name    string                   `json:"name"`
	Columns []string                 `json:"columns,omitempty"`
	Records []map[string]interface{} `json:"records"`
}

// CreateDataset uploads a new dataset
// @Summary Upload dataset
// @Description Upload a dataset as JSON records, CSV, or an Arrow IPC stream
// @Tags datasets
// @Accept json
// @Produce json
// @Param dataset body createDatasetPayload true "Dataset payload (JSON uploads)"
// @Success 200 {object} map[string]interface{} "Dataset created"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [post]
func CreateDataset(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(contentType)

	var (
		t    model.Table
		name string
		err  error
	)

	switch contentType {
	case "text/csv":
		name = r.URL.Query().Get("name")
		t, err = table.LoadCSV(r.Body)

	case "application/vnd.apache.arrow.stream":
		name = r.URL.Query().Get("name")
		var at *table.ArrowTable
		at, err = table.FromArrowStream(r.Body)
		if err == nil {
			defer at.Release()
			t = at
		}

	default:
		var payload createDatasetPayload
		if decodeErr := json.NewDecoder(r.Body).Decode(&payload); decodeErr != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		name = payload.Name
		t, err = table.FromRecords(payload.Columns, payload.Records)
	}

	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read dataset: %v", err), http.StatusBadRequest)
		return
	}
	if name == "" {
		name = "dataset"
	}

	id := uuid.New().String()
	if err := store.SaveDataset(id, name, t); err != nil {
		http.Error(w, "Failed to save dataset", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"message": "Dataset created successfully",
		"id":      id,
		"name":    name,
		"rows":    t.NumRows(),
		"columns": t.NumCols(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListDatasets retrieves all datasets
// @Summary List datasets
// @Description Get a list of all uploaded datasets
// @Tags datasets
// @Produce json
// @Success 200 {array} map[string]interface{} "List of datasets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [get]
func ListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets, err := store.ListDatasets()
	if err != nil {
		http.Error(w, "Failed to fetch datasets", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"datasets": datasets,
		"count":    len(datasets),
	})
}

// GetDataset retrieves a dataset's schema
// @Summary Get dataset
// @Description Retrieve column names, types, and row count of a dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset schema"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [get]
func GetDataset(w http.ResponseWriter, r *http.Request) {
	datasetID, ok := datasetIDFromPath(w, r, 4)
	if !ok {
		return
	}

	t, name, err := store.GetDataset(datasetID)
	if err != nil {
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return
	}

	columns := make([]map[string]interface{}, 0, t.NumCols())
	for _, col := range t.ColumnNames() {
		dt, _ := t.ColumnType(col)
		columns = append(columns, map[string]interface{}{
			"key":   col,
			"label": transform.FormatLabel(col),
			"dtype": dt.String(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":      datasetID,
		"name":    name,
		"rows":    t.NumRows(),
		"columns": columns,
	})
}

// DeleteDataset removes a dataset
// @Summary Delete dataset
// @Description Delete a dataset and its chart request log
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset deleted"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets/{id} [delete]
func DeleteDataset(w http.ResponseWriter, r *http.Request) {
	datasetID, ok := datasetIDFromPath(w, r, 4)
	if !ok {
		return
	}

	if err := store.DeleteDataset(datasetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Dataset not found", http.StatusNotFound)
		} else {
			http.Error(w, "Failed to delete dataset", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Dataset deleted successfully",
		"id":      datasetID,
	})
}

// GetChart runs a chart transform over a stored dataset
// @Summary Get chart data
// @Description Transform a stored dataset into a chart-ready structure
// @Tags charts
// @Produce json
// @Param id path string true "Dataset ID"
// @Param type path string true "Chart type" Enums(kpi_cards, bar, line, multi_line, pie, heatmap, funnel, stacked_bar, table, correlation)
// @Param x_column query string false "X-axis column"
// @Param y_column query string false "Y-axis column"
// @Param y_columns query string false "Comma-separated Y-axis columns"
// @Param label_column query string false "Label column"
// @Param value_column query string false "Value column"
// @Param stage_column query string false "Funnel stage column"
// @Param series_name query string false "Series name"
// @Param series_names query string false "Comma-separated series names"
// @Param category_names query string false "Comma-separated category names"
// @Param metrics query string false "Comma-separated metric columns"
// @Param page query int false "Page number (data table)"
// @Param page_size query int false "Page size (data table)"
// @Success 200 {object} map[string]interface{} "Chart result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 500 {object} map[string]interface{} "Transformation failure"
// @Router /datasets/{id}/charts/{type} [get]
func GetChart(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 6 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	datasetID := pathParts[3]
	chartKind := pathParts[5]

	t, _, err := store.GetDataset(datasetID)
	if err != nil {
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	start := time.Now()

	var result interface{}
	var terr error

	switch chartKind {
	case "kpi_cards":
		result, terr = transformer.KPICards(t)
	case "bar":
		if !requireParams(w, q, "x_column", "y_column") {
			return
		}
		result, terr = transformer.BarChart(t, q.Get("x_column"), q.Get("y_column"), q.Get("label_column"))
	case "line":
		if !requireParams(w, q, "x_column", "y_column") {
			return
		}
		result, terr = transformer.LineChart(t, q.Get("x_column"), q.Get("y_column"), q.Get("series_name"))
	case "multi_line":
		if !requireParams(w, q, "x_column", "y_columns") {
			return
		}
		result, terr = transformer.MultiLineChart(t, q.Get("x_column"),
			utils.QueryList(r, "y_columns"), utils.QueryList(r, "series_names"))
	case "pie":
		if !requireParams(w, q, "label_column", "value_column") {
			return
		}
		result, terr = transformer.PieChart(t, q.Get("label_column"), q.Get("value_column"))
	case "heatmap":
		if !requireParams(w, q, "x_column", "y_column", "value_column") {
			return
		}
		result, terr = transformer.Heatmap(t, q.Get("x_column"), q.Get("y_column"), q.Get("value_column"))
	case "funnel":
		if !requireParams(w, q, "stage_column", "value_column") {
			return
		}
		result, terr = transformer.FunnelChart(t, q.Get("stage_column"), q.Get("value_column"))
	case "stacked_bar":
		if !requireParams(w, q, "x_column", "y_columns") {
			return
		}
		result, terr = transformer.StackedBarChart(t, q.Get("x_column"),
			utils.QueryList(r, "y_columns"), utils.QueryList(r, "category_names"))
	case "table":
		result, terr = transformer.DataTable(t, utils.QueryInt(r, "page", 1), utils.QueryInt(r, "page_size", 50))
	case "correlation":
		result, terr = transformer.CorrelationHeatmap(t, utils.QueryList(r, "metrics"))
	default:
		http.Error(w, fmt.Sprintf("Unknown chart type: %s", chartKind), http.StatusBadRequest)
		return
	}

	duration := time.Since(start)
	if terr != nil {
		store.SaveChartLog(datasetID, chartKind, "error", terr.Error(), duration)
		http.Error(w, terr.Error(), http.StatusInternalServerError)
		return
	}
	store.SaveChartLog(datasetID, chartKind, "ok", "", duration)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetChartLogs retrieves the chart request log for a dataset
// @Summary Get chart logs
// @Description Retrieve recent chart requests made against a dataset
// @Tags charts
// @Produce json
// @Param id path string true "Dataset ID"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} map[string]interface{} "Chart logs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets/{id}/logs [get]
func GetChartLogs(w http.ResponseWriter, r *http.Request) {
	datasetID, ok := datasetIDFromPath(w, r, 5)
	if !ok {
		return
	}

	limit := utils.QueryInt(r, "limit", 50)
	if limit < 1 {
		limit = 50
	}

	logs, err := store.GetChartLogs(datasetID, limit)
	if err != nil {
		http.Error(w, "Failed to retrieve logs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"dataset_id": datasetID,
		"logs":       logs,
		"count":      len(logs),
	})
}

// datasetIDFromPath extracts the dataset ID as the fourth path segment
// and checks the expected segment count.
func datasetIDFromPath(w http.ResponseWriter, r *http.Request, wantParts int) (string, bool) {
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < wantParts {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return "", false
	}
	datasetID := pathParts[3]
	if datasetID == "" {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return "", false
	}
	return datasetID, true
}

// requireParams rejects the request when a required query parameter is
// missing or empty.
func requireParams(w http.ResponseWriter, q map[string][]string, names ...string) bool {
	for _, name := range names {
		vals, ok := q[name]
		if !ok || len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
			http.Error(w, fmt.Sprintf("%s is required", name), http.StatusBadRequest)
			return false
		}
	}
	return true
}
