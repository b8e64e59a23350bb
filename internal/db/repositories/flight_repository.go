package repositories

import (
	"context"
	"time"

	gormlib "gorm.io/gorm"

	"skyfare/voyager/internal/models/entities"
	"skyfare/voyager/internal/models/gorm"
)

// Candidate window: the queried departure day plus a trailing day, so
// next-day second legs of overnight connections are part of the snapshot.
const candidateWindow = 48 * time.Hour

// FlightRepository handles flight table operations. It is the catalog reader
// behind route search: the core only ever sees the snapshot it returns.
type FlightRepository struct {
	db *gormlib.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// LoadCandidateFlights returns every scheduled, bookable flight departing
// within the candidate window of the given day, ordered by departure time.
func (r *FlightRepository) LoadCandidateFlights(ctx context.Context, day time.Time) ([]entities.Flight, error) {
	from := day.UTC().Truncate(24 * time.Hour)
	to := from.Add(candidateWindow)

	var rows []gorm.Flight
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.FlightScheduled)).
		Where("bookable = ?", true).
		Where("departure_time >= ? AND departure_time < ?", from, to).
		Order("departure_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	flights := make([]entities.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, row.ToEntity())
	}
	return flights, nil
}

// List returns flights matching the optional origin/destination/day filters,
// for the read-only catalog surface.
func (r *FlightRepository) List(ctx context.Context, origin, destination string, day *time.Time) ([]entities.Flight, error) {
	q := r.db.WithContext(ctx).Model(&gorm.Flight{})
	if origin != "" {
		q = q.Where("origin = ?", origin)
	}
	if destination != "" {
		q = q.Where("destination = ?", destination)
	}
	if day != nil {
		from := day.UTC().Truncate(24 * time.Hour)
		q = q.Where("departure_time >= ? AND departure_time < ?", from, from.Add(24*time.Hour))
	}

	var rows []gorm.Flight
	if err := q.Order("departure_time").Find(&rows).Error; err != nil {
		return nil, err
	}

	flights := make([]entities.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, row.ToEntity())
	}
	return flights, nil
}

// MarkDepartedCompleted transitions scheduled flights whose departure has
// passed to completed and returns how many rows changed.
func (r *FlightRepository) MarkDepartedCompleted(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gorm.Flight{}).
		Where("status = ?", string(entities.FlightScheduled)).
		Where("departure_time < ?", now.UTC()).
		Updates(map[string]interface{}{
			"status":     string(entities.FlightCompleted),
			"updated_at": now.UTC(),
		})
	return res.RowsAffected, res.Error
}
