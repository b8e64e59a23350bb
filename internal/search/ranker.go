package search

import (
	"fmt"
	"sort"
)

// Page is one ranked result page. Total counts the whole deduplicated
// feasible set independent of limit/offset.
type Page struct {
	Routes []Route
	Total  int
}

// RankAll deduplicates the feasible set by route identity and imposes the
// deterministic total order: criterion value ascending, then transfer count
// ascending (direct beats connecting), then earliest departure, then route
// identity. Identical inputs always produce identical output.
func RankAll(routes []Route, criterion RankCriterion) []Route {
	seen := make(map[string]struct{}, len(routes))
	ranked := make([]Route, 0, len(routes))
	for _, r := range routes {
		key := r.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ranked = append(ranked, r)
	}

	sort.Slice(ranked, func(i, j int) bool {
		return lessByCriterion(ranked[i], ranked[j], criterion)
	})
	return ranked
}

// Paginate slices a ranked set. An offset beyond the end yields an empty page,
// never an error; a non-positive limit is a caller error.
func Paginate(ranked []Route, limit, offset int) (Page, error) {
	if limit <= 0 {
		return Page{}, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidQuery, limit)
	}
	if offset < 0 {
		return Page{}, fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidQuery, offset)
	}

	total := len(ranked)
	if offset >= total {
		return Page{Routes: []Route{}, Total: total}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return Page{Routes: ranked[offset:end], Total: total}, nil
}

// Rank orders, deduplicates and paginates the feasible set in one call.
func Rank(routes []Route, criterion RankCriterion, limit, offset int) (Page, error) {
	return Paginate(RankAll(routes, criterion), limit, offset)
}

func lessByCriterion(a, b Route, criterion RankCriterion) bool {
	var ka, kb int64
	switch criterion {
	case ByDuration:
		ka, kb = int64(a.Duration()), int64(b.Duration())
	default:
		ka, kb = a.TotalCents(), b.TotalCents()
	}
	if ka != kb {
		return ka < kb
	}
	if a.Transfers() != b.Transfers() {
		return a.Transfers() < b.Transfers()
	}
	if !a.Departure().Equal(b.Departure()) {
		return a.Departure().Before(b.Departure())
	}
	return a.Key() < b.Key()
}
