package api

import (
	"time"

	"skyfare/voyager/internal/common"
	"skyfare/voyager/internal/db"
	"skyfare/voyager/internal/db/repositories"
	"skyfare/voyager/internal/metrics"
	"skyfare/voyager/internal/search"
	"skyfare/voyager/internal/services"
)

type Repositories struct {
	Flights  *repositories.FlightRepository
	Airports *repositories.AirportRepository
}

type Services struct {
	Cache       common.CacheInterface
	RouteSearch *services.RouteSearchService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(metricsReg *metrics.MetricsRegistry, searchCfg search.Config, cacheTTL time.Duration) (*Dependencies, error) {
	repos := &Repositories{
		Flights:  repositories.NewFlightRepository(db.PgDB),
		Airports: repositories.NewAirportRepository(db.DB),
	}

	cacheSvc := common.NewCacheFromEnv()

	svcs := &Services{
		Cache:       cacheSvc,
		RouteSearch: services.NewRouteSearchService(repos.Flights, cacheSvc, searchCfg, cacheTTL, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
