package search

import (
	"fmt"
)

// FindRoutes enumerates every feasible route from q.Origin to q.Dest with at
// most one intermediate stop.
//
// Depth is capped at two legs by policy, so no priority-queue relaxation is
// needed: a direct pass over the origin's departures plus a connecting pass
// over each intermediate airport covers the whole feasible set. An empty
// result is a success, not an error.
func FindRoutes(g *Graph, q Query, cfg Config) ([]Route, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if !g.Knows(q.Origin) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, q.Origin)
	}
	if !g.Knows(q.Dest) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, q.Dest)
	}

	var routes []Route
	for _, first := range g.Departing(q.Origin) {
		if first.Dest == q.Dest {
			routes = append(routes, Route{Legs: []Leg{{Flight: first}}})
			continue
		}
		if first.Dest == q.Origin {
			// Self-loop in malformed data; not a usable intermediate.
			continue
		}

		earliest := first.Arrival.Add(cfg.MinConnection)
		latest := first.Arrival.Add(cfg.MaxConnection)
		for _, second := range g.Departing(first.Dest) {
			if second.Departure.After(latest) {
				// Departures are ordered; everything beyond is outside the window.
				break
			}
			if second.Departure.Before(earliest) {
				continue
			}
			if second.Dest != q.Dest || second.ID == first.ID {
				continue
			}
			routes = append(routes, Route{Legs: []Leg{{Flight: first}, {Flight: second}}})
		}
	}
	return routes, nil
}
