package search

import (
	"fmt"
	"strings"
	"time"
)

// RankCriterion selects the primary ordering key for ranked results.
type RankCriterion string

const (
	ByPrice    RankCriterion = "price"
	ByDuration RankCriterion = "duration"
)

// ParseCriterion maps a transport-level criterion string onto a RankCriterion.
// An empty string defaults to price.
func ParseCriterion(s string) (RankCriterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ByPrice):
		return ByPrice, nil
	case string(ByDuration):
		return ByDuration, nil
	default:
		return "", fmt.Errorf("%w: unsupported criterion %q", ErrInvalidQuery, s)
	}
}

// Query is one itinerary search request. Origin and Dest are airport codes,
// Date selects the departure day the catalog snapshot was loaded for.
type Query struct {
	Origin    string
	Dest      string
	Date      time.Time
	Criterion RankCriterion
	Limit     int
	Offset    int
}

// Validate rejects semantically invalid queries before any graph work.
func (q Query) Validate() error {
	if q.Origin == "" || q.Dest == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrInvalidQuery)
	}
	if q.Origin == q.Dest {
		return fmt.Errorf("%w: origin equals destination (%s)", ErrInvalidQuery, q.Origin)
	}
	if q.Criterion != ByPrice && q.Criterion != ByDuration {
		return fmt.Errorf("%w: unsupported criterion %q", ErrInvalidQuery, q.Criterion)
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidQuery, q.Limit)
	}
	if q.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidQuery, q.Offset)
	}
	return nil
}
