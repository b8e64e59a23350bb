package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"skyfare/voyager/internal/api"
	"skyfare/voyager/internal/db"
	"skyfare/voyager/internal/jobs"
	"skyfare/voyager/internal/logging"
	"skyfare/voyager/internal/metrics"
	"skyfare/voyager/internal/middleware"
	"skyfare/voyager/internal/search"
)

// RegisterRoutes builds the chi router, wires dependencies and starts the
// background completion job.
func RegisterRoutes(upSince time.Time, searchCfg search.Config, cacheTTL time.Duration) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with request-ID and CORS middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(metricsReg, searchCfg, cacheTTL)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	jobs.InitializeJobs(context.Background(), deps.Repo.Flights, metricsReg)

	RegisterAPIRoutes(r, metricsReg, deps)

	return r
}
