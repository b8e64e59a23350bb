package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skyfare/voyager/internal/common"
	"skyfare/voyager/internal/models/dtos"
	"skyfare/voyager/internal/models/entities"
	"skyfare/voyager/internal/search"
	"skyfare/voyager/internal/services"
)

type stubCatalog struct {
	flights []entities.Flight
}

func (s *stubCatalog) LoadCandidateFlights(ctx context.Context, day time.Time) ([]entities.Flight, error) {
	return s.flights, nil
}

func newTestHandler(flights []entities.Flight) http.HandlerFunc {
	cfg := search.Config{MinConnection: 30 * time.Minute, MaxConnection: 12 * time.Hour}
	svc := services.NewRouteSearchService(&stubCatalog{flights: flights}, common.NewCacheService(60, 600), cfg, time.Minute, nil)
	return SearchRoutesHandler(svc)
}

func snapshotFlights() []entities.Flight {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return []entities.Flight{
		{ID: "F1", Origin: "KBP", Dest: "LWO",
			Departure: day.Add(8 * time.Hour), Arrival: day.Add(9*time.Hour + 10*time.Minute),
			PriceCents: 4000, Bookable: true, Status: entities.FlightScheduled},
		{ID: "F2", Origin: "KBP", Dest: "ODS",
			Departure: day.Add(7 * time.Hour), Arrival: day.Add(8*time.Hour + 20*time.Minute),
			PriceCents: 1000, Bookable: true, Status: entities.FlightScheduled},
		{ID: "F3", Origin: "ODS", Dest: "LWO",
			Departure: day.Add(9*time.Hour + 10*time.Minute), Arrival: day.Add(10*time.Hour + 30*time.Minute),
			PriceCents: 1500, Bookable: true, Status: entities.FlightScheduled},
	}
}

func doSearch(t *testing.T, handler http.HandlerFunc, target string) (*httptest.ResponseRecorder, dtos.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope dtos.APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return rec, envelope
}

func decodeResult(t *testing.T, data any) dtos.RouteSearchResult {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Failed to re-marshal data: %v", err)
	}
	var result dtos.RouteSearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	return result
}

func TestSearchRoutesHandler_Success(t *testing.T) {
	handler := newTestHandler(snapshotFlights())

	rec, envelope := doSearch(t, handler, "/api/v1/routes?origin=kbp&destination=lwo&date=2024-06-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if envelope.Status != "ok" {
		t.Fatalf("Expected ok status, got %s", envelope.Status)
	}

	result := decodeResult(t, envelope.Data)
	if result.Total != 2 {
		t.Fatalf("Expected 2 routes, got %d", result.Total)
	}
	// Default criterion is price: the 2500-cent connection ranks first.
	if result.Routes[0].TotalCents != 2500 || result.Routes[0].Transfers != 1 {
		t.Errorf("Unexpected first route: %+v", result.Routes[0])
	}
	if result.Routes[0].TotalPrice != "25.00" {
		t.Errorf("Expected formatted price 25.00, got %s", result.Routes[0].TotalPrice)
	}
}

func TestSearchRoutesHandler_DurationCriterion(t *testing.T) {
	handler := newTestHandler(snapshotFlights())

	rec, envelope := doSearch(t, handler, "/api/v1/routes?origin=KBP&destination=LWO&date=2024-06-01&criterion=duration")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	result := decodeResult(t, envelope.Data)
	if result.Total != 2 {
		t.Fatalf("Expected 2 routes, got %d", result.Total)
	}
	// Fastest first: the direct flight wins on duration.
	if result.Routes[0].Transfers != 0 {
		t.Errorf("Expected direct route first by duration, got %+v", result.Routes[0])
	}
}

func TestSearchRoutesHandler_Pagination(t *testing.T) {
	handler := newTestHandler(snapshotFlights())

	rec, envelope := doSearch(t, handler, "/api/v1/routes?origin=KBP&destination=LWO&date=2024-06-01&limit=1&offset=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	result := decodeResult(t, envelope.Data)
	if len(result.Routes) != 1 || result.Total != 2 {
		t.Fatalf("Expected one route of total 2, got %d of %d", len(result.Routes), result.Total)
	}
}

func TestSearchRoutesHandler_SameOriginAndDestination(t *testing.T) {
	handler := newTestHandler(snapshotFlights())

	rec, envelope := doSearch(t, handler, "/api/v1/routes?origin=KBP&destination=KBP&date=2024-06-01")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if envelope.Status != "error" {
		t.Fatalf("Expected error status, got %s", envelope.Status)
	}
}

func TestSearchRoutesHandler_UnknownAirport(t *testing.T) {
	handler := newTestHandler(snapshotFlights())

	rec, _ := doSearch(t, handler, "/api/v1/routes?origin=KBP&destination=ZZZ&date=2024-06-01")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
}

func TestSearchRoutesHandler_BadParameters(t *testing.T) {
	handler := newTestHandler(snapshotFlights())

	cases := []string{
		"/api/v1/routes?origin=KBP&destination=LWO&limit=abc",
		"/api/v1/routes?origin=KBP&destination=LWO&offset=abc",
		"/api/v1/routes?origin=KBP&destination=LWO&date=junk",
		"/api/v1/routes?origin=KBP&destination=LWO&criterion=banana",
		"/api/v1/routes?origin=KBP&destination=LWO&date=2024-06-01&limit=0",
	}
	for _, target := range cases {
		rec, _ := doSearch(t, handler, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %s, got %d", target, rec.Code)
		}
	}
}

func TestSearchRoutesHandler_CorruptCatalog(t *testing.T) {
	flights := snapshotFlights()
	flights[1].ID = flights[0].ID
	handler := newTestHandler(flights)

	rec, _ := doSearch(t, handler, "/api/v1/routes?origin=KBP&destination=LWO&date=2024-06-01")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", rec.Code)
	}
}

func TestSearchRoutesHandler_NoFeasibleRouteIsOK(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	handler := newTestHandler([]entities.Flight{
		{ID: "F1", Origin: "KBP", Dest: "ODS",
			Departure: day.Add(7 * time.Hour), Arrival: day.Add(8 * time.Hour),
			PriceCents: 1000, Bookable: true, Status: entities.FlightScheduled},
		{ID: "F2", Origin: "LWO", Dest: "IEV",
			Departure: day.Add(9 * time.Hour), Arrival: day.Add(10 * time.Hour),
			PriceCents: 2000, Bookable: true, Status: entities.FlightScheduled},
	})

	rec, envelope := doSearch(t, handler, "/api/v1/routes?origin=KBP&destination=LWO&date=2024-06-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for empty feasible set, got %d", rec.Code)
	}

	result := decodeResult(t, envelope.Data)
	if result.Total != 0 {
		t.Fatalf("Expected empty result, got %d", result.Total)
	}
}
