package entities

// Airport is a catalog airport record. The code is the stable identifier used
// throughout search; the timezone offset is display metadata only, all search
// comparisons happen on absolute timestamps.
type Airport struct {
	Code            string `db:"code"`
	Name            string `db:"name"`
	City            string `db:"city"`
	TZOffsetMinutes int    `db:"tz_offset_minutes"`
}
