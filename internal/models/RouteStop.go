package models

import "bus_depot/internal/geo"

// RouteStop is the many-to-many junction between routes and stops. The
// whole row is the composite key.
type RouteStop struct {
	Latitude    geo.Degrees `gorm:"column:latitude_e6;primaryKey;autoIncrement:false" json:"latitude"`
	Longitude   geo.Degrees `gorm:"column:longitude_e6;primaryKey;autoIncrement:false" json:"longitude"`
	RouteNumber int         `gorm:"primaryKey;autoIncrement:false" json:"route_number"`
}

func (RouteStop) TableName() string { return "route_stops" }
