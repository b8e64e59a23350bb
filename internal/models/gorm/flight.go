package gorm

import (
	"time"

	"skyfare/voyager/internal/models/entities"
)

// Flight represents a flight row in the catalog database
type Flight struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	Origin        string    `gorm:"column:origin;type:varchar(4);not null;index"`
	Destination   string    `gorm:"column:destination;type:varchar(4);not null;index"`
	DepartureTime time.Time `gorm:"column:departure_time;not null;index"`
	ArrivalTime   time.Time `gorm:"column:arrival_time;not null"`
	PriceCents    int64     `gorm:"column:price_cents;type:bigint;not null"`
	Bookable      bool      `gorm:"column:bookable;not null;default:true"`
	Status        string    `gorm:"column:status;type:varchar(16);not null;default:'scheduled'"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

// ToEntity converts the persistence row into the immutable search snapshot form.
func (f Flight) ToEntity() entities.Flight {
	return entities.Flight{
		ID:         f.ID,
		Origin:     f.Origin,
		Dest:       f.Destination,
		Departure:  f.DepartureTime.UTC(),
		Arrival:    f.ArrivalTime.UTC(),
		PriceCents: f.PriceCents,
		Bookable:   f.Bookable,
		Status:     entities.FlightStatus(f.Status),
	}
}
