package search

import (
	"fmt"
	"sort"

	"skyfare/voyager/internal/models/entities"
)

// Graph is the per-request adjacency index over one catalog snapshot:
// origin airport code -> flights departing there, ordered by departure time
// with flight ID as the tie-break. It is read-only once built and holds no
// state beyond the snapshot, so one search never observes another.
type Graph struct {
	adjacency map[string][]entities.Flight
	airports  map[string]struct{}
}

// BuildGraph validates the snapshot and indexes it by origin airport.
//
// Validation covers the whole input, including rows that are later filtered
// out: a duplicate flight ID or an arrival not after its departure signals a
// corrupt upstream snapshot and fails the request with ErrInvalidInput rather
// than searching over partial data. Flights that are not scheduled-and-bookable
// are dropped from the index regardless of what the catalog promised.
func BuildGraph(flights []entities.Flight) (*Graph, error) {
	seen := make(map[string]struct{}, len(flights))
	for _, f := range flights {
		if f.ID == "" {
			return nil, fmt.Errorf("%w: flight with empty ID %s-%s", ErrInvalidInput, f.Origin, f.Dest)
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate flight ID %s", ErrInvalidInput, f.ID)
		}
		seen[f.ID] = struct{}{}
		if !f.Arrival.After(f.Departure) {
			return nil, fmt.Errorf("%w: flight %s arrives before it departs", ErrInvalidInput, f.ID)
		}
	}

	g := &Graph{
		adjacency: make(map[string][]entities.Flight),
		airports:  make(map[string]struct{}),
	}
	for _, f := range flights {
		if !f.Searchable() {
			continue
		}
		g.airports[f.Origin] = struct{}{}
		g.airports[f.Dest] = struct{}{}
		g.adjacency[f.Origin] = append(g.adjacency[f.Origin], f)
	}
	for code := range g.adjacency {
		flights := g.adjacency[code]
		sort.Slice(flights, func(i, j int) bool {
			if !flights[i].Departure.Equal(flights[j].Departure) {
				return flights[i].Departure.Before(flights[j].Departure)
			}
			return flights[i].ID < flights[j].ID
		})
	}
	return g, nil
}

// Knows reports whether the airport code appears anywhere in the indexed window.
func (g *Graph) Knows(code string) bool {
	_, ok := g.airports[code]
	return ok
}

// Departing returns the flights leaving the given airport in departure order.
// An airport with no outgoing flights yields an empty slice.
func (g *Graph) Departing(code string) []entities.Flight {
	return g.adjacency[code]
}
