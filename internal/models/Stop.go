package models

import "bus_depot/internal/geo"

// Stop is keyed by its coordinate pair, stored as microdegree integers
// (see the geo package) so composite-key lookups never compare floats.
type Stop struct {
	Latitude  geo.Degrees `gorm:"column:latitude_e6;primaryKey;autoIncrement:false" json:"latitude"`
	Longitude geo.Degrees `gorm:"column:longitude_e6;primaryKey;autoIncrement:false" json:"longitude"`
	StopName  *string     `json:"stop_name,omitempty"`
	Address   *string     `json:"address,omitempty"`
}

func (Stop) TableName() string { return "stops" }
