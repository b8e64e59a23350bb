package search

import "errors"

var (
	// ErrInvalidQuery marks a malformed or semantically invalid request,
	// e.g. origin equal to destination or a non-positive limit. Rejected
	// before any graph work.
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrUnknownAirport marks an airport code absent from the indexed
	// window. Distinct from an empty feasible set, which is a success.
	ErrUnknownAirport = errors.New("unknown airport")

	// ErrInvalidInput marks malformed catalog data (duplicate flight IDs,
	// arrival not after departure). Fatal to the request: partial results
	// over a corrupt snapshot are never returned.
	ErrInvalidInput = errors.New("invalid flight catalog input")
)
