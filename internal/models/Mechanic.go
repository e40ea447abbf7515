package models

// Mechanic is keyed by passport number.
type Mechanic struct {
	PassportNumber  string `gorm:"primaryKey" json:"passport_number" binding:"required"`
	FullName        string `gorm:"not null" json:"full_name" binding:"required"`
	ExperienceYears int    `gorm:"not null" json:"experience_years"`
}
