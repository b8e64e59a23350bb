package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"skyfare/voyager/internal/common"
	"skyfare/voyager/internal/constants"
	"skyfare/voyager/internal/logging"
	"skyfare/voyager/internal/metrics"
	"skyfare/voyager/internal/models/dtos"
	"skyfare/voyager/internal/models/entities"
	"skyfare/voyager/internal/search"
)

// CatalogReader supplies the flight snapshot for a query window. The search
// core treats it as an opaque collaborator; retries and timeouts around it
// belong to the caller.
type CatalogReader interface {
	LoadCandidateFlights(ctx context.Context, day time.Time) ([]entities.Flight, error)
}

// RouteSearchService runs the full search pipeline: catalog load, graph
// build, two-pass enumeration, ranking. The ranked feasible set is cached
// per (origin, destination, date, criterion) so pages share one computation,
// and concurrent identical searches collapse into a single catalog load.
type RouteSearchService struct {
	catalog  CatalogReader
	cache    common.CacheInterface
	cfg      search.Config
	cacheTTL time.Duration
	metrics  *metrics.MetricsRegistry

	// Singleflight group to prevent cache stampede
	searchGroup singleflight.Group
}

// NewRouteSearchService creates a new route search service
func NewRouteSearchService(
	catalog CatalogReader,
	cache common.CacheInterface,
	cfg search.Config,
	cacheTTL time.Duration,
	metricsReg *metrics.MetricsRegistry,
) *RouteSearchService {
	return &RouteSearchService{
		catalog:  catalog,
		cache:    cache,
		cfg:      cfg,
		cacheTTL: cacheTTL,
		metrics:  metricsReg,
	}
}

// FindRoutes answers one itinerary search: ranked routes plus the total
// feasible count independent of limit/offset.
func (s *RouteSearchService) FindRoutes(ctx context.Context, q search.Query) (*dtos.RouteSearchResult, error) {
	start := time.Now()

	if err := q.Validate(); err != nil {
		s.countOutcome("invalid_query")
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s%s:%s:%s:%s",
		constants.CachePrefixRouteSearch, q.Origin, q.Dest, q.Date.UTC().Format("2006-01-02"), q.Criterion)

	var ranked []dtos.Route
	if s.cache.GetJSON(cacheKey, &ranked) {
		s.countCache(true)
		s.countOutcome("cache_hit")
		return paginateDTOs(ranked, q.Limit, q.Offset), nil
	}
	s.countCache(false)

	result, err, _ := s.searchGroup.Do(cacheKey, func() (interface{}, error) {
		return s.searchAndRank(ctx, q)
	})
	if err != nil {
		s.countOutcome(outcomeLabel(err))
		return nil, err
	}
	ranked = result.([]dtos.Route)

	s.cache.SetJSON(cacheKey, ranked, s.cacheTTL)

	if s.metrics != nil {
		s.metrics.SearchDuration.Observe(time.Since(start).Seconds())
		s.metrics.RoutesFoundPerSearch.Observe(float64(len(ranked)))
	}
	s.countOutcome("ok")

	return paginateDTOs(ranked, q.Limit, q.Offset), nil
}

// searchAndRank computes the full ranked feasible set for the query,
// ignoring limit/offset so the result is cacheable across pages.
func (s *RouteSearchService) searchAndRank(ctx context.Context, q search.Query) ([]dtos.Route, error) {
	flights, err := s.catalog.LoadCandidateFlights(ctx, q.Date)
	if err != nil {
		return nil, fmt.Errorf("loading candidate flights: %w", err)
	}

	graph, err := search.BuildGraph(flights)
	if err != nil {
		return nil, err
	}

	routes, err := search.FindRoutes(graph, q, s.cfg)
	if err != nil {
		return nil, err
	}

	ranked := search.RankAll(routes, q.Criterion)

	logging.Debug("Route search computed",
		"origin", q.Origin,
		"destination", q.Dest,
		"candidates", len(flights),
		"feasible", len(ranked),
	)

	out := make([]dtos.Route, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, toRouteDTO(r))
	}
	return out, nil
}

// paginateDTOs applies the core pagination law to the cached ranked set:
// an offset past the end is an empty page, never an error. Limit and offset
// were validated with the query.
func paginateDTOs(ranked []dtos.Route, limit, offset int) *dtos.RouteSearchResult {
	total := len(ranked)
	if offset >= total {
		return &dtos.RouteSearchResult{Routes: []dtos.Route{}, Total: total}
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return &dtos.RouteSearchResult{Routes: ranked[offset:end], Total: total}
}

func toRouteDTO(r search.Route) dtos.Route {
	legs := make([]dtos.Leg, 0, len(r.Legs))
	for _, l := range r.Legs {
		legs = append(legs, dtos.Leg{
			FlightID:    l.Flight.ID,
			Origin:      l.Flight.Origin,
			Destination: l.Flight.Dest,
			Departure:   l.Flight.Departure,
			Arrival:     l.Flight.Arrival,
			PriceCents:  l.Flight.PriceCents,
		})
	}
	return dtos.Route{
		Legs:            legs,
		TotalCents:      r.TotalCents(),
		TotalPrice:      entities.FormatCents(r.TotalCents()),
		DurationMinutes: int64(r.Duration() / time.Minute),
		Transfers:       r.Transfers(),
		LayoverMinutes:  int64(r.Layover() / time.Minute),
		Departure:       r.Departure(),
		Arrival:         r.Arrival(),
	}
}

func (s *RouteSearchService) countOutcome(outcome string) {
	if s.metrics != nil {
		s.metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	}
}

func (s *RouteSearchService) countCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixRouteSearch)).Inc()
	} else {
		s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixRouteSearch)).Inc()
	}
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, search.ErrUnknownAirport):
		return "unknown_airport"
	case errors.Is(err, search.ErrInvalidQuery):
		return "invalid_query"
	case errors.Is(err, search.ErrInvalidInput):
		return "bad_catalog"
	default:
		return "error"
	}
}
