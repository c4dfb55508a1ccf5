package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"breate/backend/internal/api"
	"breate/backend/internal/config"
	"breate/backend/internal/db"
	"breate/backend/internal/logging"
	"breate/backend/internal/metrics"
	"breate/backend/internal/middleware"
)

// RegisterRoutes builds the chi router with global middleware and all API
// routes.
func RegisterRoutes(cfg *config.Config, gormDB *gorm.DB, upSince time.Time) (http.Handler, error) {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(cfg, gormDB, metricsReg)
	if err != nil {
		return nil, err
	}

	handlers := api.NewHandlers(deps)

	RegisterAPIRoutes(r, deps, handlers)

	return r, nil
}
