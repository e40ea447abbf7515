package models

import "time"

type Trip struct {
	TripID         int        `gorm:"column:trip_id;primaryKey;autoIncrement" json:"trip_id"`
	DriverPassport *string    `gorm:"index" json:"driver_passport,omitempty"`
	RouteNumber    *int       `gorm:"index" json:"route_number,omitempty"`
	GosNum         *string    `gorm:"column:gos_num;index" json:"gos_num,omitempty"`
	TripDate       *time.Time `gorm:"type:date" json:"trip_date,omitempty"`
	StartTime      *string    `json:"start_time,omitempty"`
	EndTime        *string    `json:"end_time,omitempty"`
}
