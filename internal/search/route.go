package search

import (
	"strings"
	"time"

	"skyfare/voyager/internal/models/entities"
)

// Leg references exactly one flight used within a route.
type Leg struct {
	Flight entities.Flight
}

// Route is a value object: an ordered sequence of one or two legs from origin
// to destination. Two routes with the same ordered leg IDs are the same route.
type Route struct {
	Legs []Leg
}

// Key is the route identity: the ordered leg flight IDs joined. Used for
// deduplication and as the final deterministic tie-break.
func (r Route) Key() string {
	ids := make([]string, len(r.Legs))
	for i, l := range r.Legs {
		ids[i] = l.Flight.ID
	}
	return strings.Join(ids, ">")
}

// TotalCents is the sum of leg prices in integer minor units.
func (r Route) TotalCents() int64 {
	var total int64
	for _, l := range r.Legs {
		total += l.Flight.PriceCents
	}
	return total
}

// Departure is the first leg departure timestamp.
func (r Route) Departure() time.Time {
	return r.Legs[0].Flight.Departure
}

// Arrival is the final leg arrival timestamp.
func (r Route) Arrival() time.Time {
	return r.Legs[len(r.Legs)-1].Flight.Arrival
}

// Duration is final arrival minus first departure.
func (r Route) Duration() time.Duration {
	return r.Arrival().Sub(r.Departure())
}

// Transfers is the number of intermediate stops (0 or 1).
func (r Route) Transfers() int {
	return len(r.Legs) - 1
}

// Layover is the gap between first arrival and second departure, zero for
// direct routes.
func (r Route) Layover() time.Duration {
	if len(r.Legs) < 2 {
		return 0
	}
	return r.Legs[1].Flight.Departure.Sub(r.Legs[0].Flight.Arrival)
}
