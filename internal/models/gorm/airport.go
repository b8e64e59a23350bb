package gorm

import (
	"time"
)

// Airport represents an airport record in the catalog database
type Airport struct {
	Code            string    `gorm:"column:code;primaryKey;type:varchar(4)"`
	Name            string    `gorm:"column:name;type:text;not null"`
	City            string    `gorm:"column:city;type:varchar(100)"`
	TZOffsetMinutes int       `gorm:"column:tz_offset_minutes;type:integer;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
