package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"breate/backend/internal/config"
	"breate/backend/internal/db"
	"breate/backend/internal/logging"
	"breate/backend/internal/routes"
)

// @title Breate API
// @version 1.0
// @description Backend API for the Breate community platform.
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Breate API starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Raw connection for the health check
	if err := db.InitPostgres(cfg.DatabaseURL); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// ORM connection; creates the schema
	gormDB, err := db.InitPostgresORM(cfg.DatabaseURL)
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	// Reference data must exist before serving traffic
	if err := db.SeedReferenceData(gormDB); err != nil {
		logging.Error("Failed to seed reference data", "error", err.Error())
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	upSince := time.Now()

	router, err := routes.RegisterRoutes(cfg, gormDB, upSince)
	if err != nil {
		logging.Error("Failed to initialize router", "error", err.Error())
		log.Fatalf("Failed to initialize router: %v", err)
	}

	// Metrics endpoint lives outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.Port
	logging.Info("Server starting", "addr", addr, "environment", cfg.AppEnv)
	log.Fatal(http.ListenAndServe(addr, mux))
}
