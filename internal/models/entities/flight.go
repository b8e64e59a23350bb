package entities

import (
	"fmt"
	"time"
)

// FlightStatus is the lifecycle state of a scheduled flight.
type FlightStatus string

const (
	FlightScheduled FlightStatus = "scheduled"
	FlightCompleted FlightStatus = "completed"
	FlightCancelled FlightStatus = "cancelled"
)

// Flight is an immutable snapshot of one scheduled flight as supplied by the
// catalog. Timestamps are absolute (UTC); prices are integer minor units so
// route totals never accumulate float drift.
type Flight struct {
	ID         string
	Origin     string
	Dest       string
	Departure  time.Time
	Arrival    time.Time
	PriceCents int64
	Bookable   bool
	Status     FlightStatus
}

// Searchable reports whether the flight may participate in route search.
func (f Flight) Searchable() bool {
	return f.Status == FlightScheduled && f.Bookable
}

// FormatCents renders integer minor units as a decimal string, e.g. 12345 -> "123.45".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
