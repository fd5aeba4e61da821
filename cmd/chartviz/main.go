package main

import (
	"log"
	"os"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "chartviz/docs"
	"chartviz/internal/api"
	"chartviz/internal/store"
	"chartviz/pkg/router"
)

// @title chartviz API
// @version 1.0
// @description Upload tabular datasets and reshape them into chart-ready JSON.
// @BasePath /api/v1
func main() {
	dbPath := os.Getenv("CHARTVIZ_DB")
	if dbPath == "" {
		dbPath = "chartviz.db"
	}
	if err := store.InitDB(dbPath); err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	addr := os.Getenv("CHARTVIZ_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := router.New()
	api.RegisterRoutes(r)
	r.Mount("/swagger/", httpSwagger.WrapHandler)

	r.Start(addr)
}
