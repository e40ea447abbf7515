package models

import "time"

// Driver is keyed by passport number. IDCompany is a soft foreign key to
// companies: no cascade, orphaning is allowed.
type Driver struct {
	PassportNumber  string     `gorm:"primaryKey" json:"passport_number" binding:"required"`
	FullName        string     `gorm:"not null" json:"full_name" binding:"required"`
	IDCompany       *int       `gorm:"column:id_company;index" json:"id_company,omitempty"`
	ExperienceYears *int       `json:"experience_years,omitempty"`
	RoutesServed    *string    `json:"routes_served,omitempty"`
	ContractNumber  *string    `json:"contract_number,omitempty"`
	ContractStart   *time.Time `gorm:"type:date" json:"contract_start,omitempty"`
	ContractEnd     *time.Time `gorm:"type:date" json:"contract_end,omitempty"`
}
