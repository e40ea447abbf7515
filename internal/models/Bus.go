package models

import "time"

// Bus is keyed by its state registration plate (gos_num).
type Bus struct {
	GosNum             string     `gorm:"column:gos_num;primaryKey" json:"gos_num" binding:"required"`
	Brand              *string    `json:"brand,omitempty"`
	Model              *string    `json:"model,omitempty"`
	ManufactureYear    *int       `json:"manufacture_year,omitempty"`
	OwnerCompany       *int       `gorm:"index" json:"owner_company,omitempty"`
	RouteNumber        *int       `gorm:"index" json:"route_number,omitempty"`
	TechnicalCondition *string    `json:"technical_condition,omitempty"`
	DriverPassport     *string    `gorm:"index" json:"driver_passport,omitempty"`
	Capacity           *int       `json:"capacity,omitempty"`
	RegistrationDate   *time.Time `gorm:"type:date" json:"registration_date,omitempty"`
}

func (Bus) TableName() string { return "buses" }
