package api

import (
	"net/http"
	"strings"
	"time"

	"skyfare/voyager/internal/common"
	"skyfare/voyager/internal/constants"
	"skyfare/voyager/internal/db/repositories"
	"skyfare/voyager/internal/models/dtos"
	"skyfare/voyager/internal/models/entities"
)

// ListFlightsHandler handles GET /api/v1/flights with optional
// origin/destination/date filters
func ListFlightsHandler(flights *repositories.FlightRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		params := r.URL.Query()
		origin := strings.ToUpper(strings.TrimSpace(params.Get("origin")))
		destination := strings.ToUpper(strings.TrimSpace(params.Get("destination")))

		var day *time.Time
		if ds := params.Get("date"); ds != "" {
			parsed, err := time.Parse("2006-01-02", ds)
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			utc := parsed.UTC()
			day = &utc
		}

		records, err := flights.List(r.Context(), origin, destination, day)
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to list flights", http.StatusInternalServerError)
			return
		}

		out := make([]dtos.FlightDTO, 0, len(records))
		for _, f := range records {
			out = append(out, toFlightDTO(f))
		}

		common.RespondSuccess(w, initTime, constants.MsgFlightsFetched, out)
	}
}

func toFlightDTO(f entities.Flight) dtos.FlightDTO {
	return dtos.FlightDTO{
		ID:          f.ID,
		Origin:      f.Origin,
		Destination: f.Dest,
		Departure:   f.Departure,
		Arrival:     f.Arrival,
		PriceCents:  f.PriceCents,
		Price:       entities.FormatCents(f.PriceCents),
		Bookable:    f.Bookable,
		Status:      string(f.Status),
	}
}
