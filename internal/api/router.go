package api

import (
	"chartviz/internal/api/handler"
	"chartviz/pkg/router"
)

// RegisterRoutes wires the dataset and chart endpoints. More specific
// patterns are registered first so the `*` segments do not shadow them.
func RegisterRoutes(r *router.Router) {
	r.GET("/api/v1/datasets/*/charts/*", handler.GetChart)
	r.GET("/api/v1/datasets/*/logs", handler.GetChartLogs)

	r.POST("/api/v1/datasets", handler.CreateDataset)
	r.GET("/api/v1/datasets", handler.ListDatasets)
	r.GET("/api/v1/datasets/*", handler.GetDataset)
	r.DELETE("/api/v1/datasets/*", handler.DeleteDataset)
}
