package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"skyfare/voyager/internal/models/entities"
)

// AirportRepository handles airport table reads over sqlx.
type AirportRepository struct {
	db *sqlx.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *sqlx.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByCode finds an airport by code (case-insensitive). Returns nil when
// the code is not in the catalog.
func (r *AirportRepository) FindByCode(ctx context.Context, code string) (*entities.Airport, error) {
	var airport entities.Airport
	err := r.db.GetContext(ctx, &airport,
		`SELECT code, name, city, tz_offset_minutes FROM airports WHERE UPPER(code) = UPPER($1)`, code)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

// List returns airports, optionally filtered by city substring.
func (r *AirportRepository) List(ctx context.Context, city string) ([]entities.Airport, error) {
	airports := []entities.Airport{}
	if city == "" {
		err := r.db.SelectContext(ctx, &airports,
			`SELECT code, name, city, tz_offset_minutes FROM airports ORDER BY code`)
		return airports, err
	}
	err := r.db.SelectContext(ctx, &airports,
		`SELECT code, name, city, tz_offset_minutes FROM airports WHERE city ILIKE '%' || $1 || '%' ORDER BY code`, city)
	return airports, err
}
