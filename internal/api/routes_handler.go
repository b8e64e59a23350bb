package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"skyfare/voyager/internal/common"
	"skyfare/voyager/internal/constants"
	"skyfare/voyager/internal/search"
	"skyfare/voyager/internal/services"
)

// SearchRoutesHandler handles GET /api/v1/routes
//
// Translates transport-level query parameters into a search query, runs the
// search, and maps the error taxonomy onto HTTP status codes. An empty
// feasible set is a 200 with total 0, never an error.
func SearchRoutesHandler(svc *services.RouteSearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		params := r.URL.Query()
		origin := strings.ToUpper(strings.TrimSpace(params.Get("origin")))
		destination := strings.ToUpper(strings.TrimSpace(params.Get("destination")))

		criterion, err := search.ParseCriterion(params.Get("criterion"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidQuery, http.StatusBadRequest)
			return
		}

		date := time.Now().UTC().Truncate(24 * time.Hour)
		if ds := params.Get("date"); ds != "" {
			parsed, err := time.Parse("2006-01-02", ds)
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = parsed.UTC()
		}

		limit := constants.DefaultResultLimit
		if qs := params.Get("limit"); qs != "" {
			if limit, err = strconv.Atoi(qs); err != nil {
				common.RespondError(w, initTime, nil, "Invalid limit parameter", http.StatusBadRequest)
				return
			}
		}

		offset := 0
		if qs := params.Get("offset"); qs != "" {
			if offset, err = strconv.Atoi(qs); err != nil {
				common.RespondError(w, initTime, nil, "Invalid offset parameter", http.StatusBadRequest)
				return
			}
		}

		query := search.Query{
			Origin:    origin,
			Dest:      destination,
			Date:      date,
			Criterion: criterion,
			Limit:     limit,
			Offset:    offset,
		}

		result, err := svc.FindRoutes(r.Context(), query)
		if err != nil {
			switch {
			case errors.Is(err, search.ErrInvalidQuery):
				common.RespondError(w, initTime, err, constants.MsgInvalidQuery, http.StatusBadRequest)
			case errors.Is(err, search.ErrUnknownAirport):
				common.RespondError(w, initTime, err, constants.MsgUnknownAirport, http.StatusNotFound)
			case errors.Is(err, search.ErrInvalidInput):
				// Upstream data integrity problem, not the client's fault.
				common.RespondError(w, initTime, nil, constants.MsgCatalogCorrupted, http.StatusBadGateway)
			default:
				common.RespondError(w, initTime, nil, constants.MsgSearchFailed, http.StatusInternalServerError)
			}
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgRoutesFetched, result)
	}
}
