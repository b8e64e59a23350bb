package routes

import (
	"github.com/go-chi/chi/v5"

	"skyfare/voyager/internal/api"
	"skyfare/voyager/internal/metrics"
	"skyfare/voyager/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.RateLimitMiddleware(5, 10))

		v1.Get("/routes", api.SearchRoutesHandler(deps.Services.RouteSearch))
		v1.Get("/airports", api.ListAirportsHandler(deps.Repo.Airports))
		v1.Get("/flights", api.ListFlightsHandler(deps.Repo.Flights))
	})
}
