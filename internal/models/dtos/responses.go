package dtos

import "time"

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// Leg is one flight segment inside a ranked route.
type Leg struct {
	FlightID    string    `json:"flight_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Departure   time.Time `json:"departure"`
	Arrival     time.Time `json:"arrival"`
	PriceCents  int64     `json:"price_cents"`
}

// Route is a ranked itinerary: one or two legs with derived totals.
type Route struct {
	Legs            []Leg     `json:"legs"`
	TotalCents      int64     `json:"total_price_cents"`
	TotalPrice      string    `json:"total_price"`
	DurationMinutes int64     `json:"total_duration_minutes"`
	Transfers       int       `json:"transfers"`
	LayoverMinutes  int64     `json:"layover_minutes,omitempty"`
	Departure       time.Time `json:"departure"`
	Arrival         time.Time `json:"arrival"`
}

// RouteSearchResult is the payload of GET /api/v1/routes. Total counts the
// whole feasible set regardless of limit/offset so clients can page.
type RouteSearchResult struct {
	Routes []Route `json:"routes"`
	Total  int     `json:"total"`
}

// AirportDTO is the read-only airport listing shape.
type AirportDTO struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	City            string `json:"city"`
	TZOffsetMinutes int    `json:"tz_offset_minutes"`
}

// FlightDTO is the read-only flight listing shape.
type FlightDTO struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Departure   time.Time `json:"departure"`
	Arrival     time.Time `json:"arrival"`
	PriceCents  int64     `json:"price_cents"`
	Price       string    `json:"price"`
	Bookable    bool      `json:"bookable"`
	Status      string    `json:"status"`
}
