package models

import "bus_depot/internal/geo"

// StopTime is the schedule junction: when buses of a route pass a stop.
// Arrival/departure are HH:MM:SS text.
type StopTime struct {
	Latitude      geo.Degrees `gorm:"column:latitude_e6;primaryKey;autoIncrement:false" json:"latitude"`
	Longitude     geo.Degrees `gorm:"column:longitude_e6;primaryKey;autoIncrement:false" json:"longitude"`
	RouteNumber   int         `gorm:"primaryKey;autoIncrement:false" json:"route_number"`
	ArrivalTime   *string     `json:"arrival_time,omitempty"`
	DepartureTime *string     `json:"departure_time,omitempty"`
}

func (StopTime) TableName() string { return "stop_time" }
