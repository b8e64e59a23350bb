package api

import (
	"net/http"
	"time"

	"skyfare/voyager/internal/common"
	"skyfare/voyager/internal/constants"
	"skyfare/voyager/internal/db/repositories"
	"skyfare/voyager/internal/models/dtos"
)

// ListAirportsHandler handles GET /api/v1/airports with an optional city filter
func ListAirportsHandler(airports *repositories.AirportRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		city := r.URL.Query().Get("city")
		records, err := airports.List(r.Context(), city)
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to list airports", http.StatusInternalServerError)
			return
		}

		out := make([]dtos.AirportDTO, 0, len(records))
		for _, a := range records {
			out = append(out, dtos.AirportDTO{
				Code:            a.Code,
				Name:            a.Name,
				City:            a.City,
				TZOffsetMinutes: a.TZOffsetMinutes,
			})
		}

		common.RespondSuccess(w, initTime, constants.MsgAirportsFetched, out)
	}
}
