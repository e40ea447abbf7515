package models

type TechnicalInspection struct {
	InspectionID     int     `gorm:"column:inspection_id;primaryKey;autoIncrement" json:"inspection_id"`
	MechanicPassport *string `gorm:"index" json:"mechanic_passport,omitempty"`
	GosNum           *string `gorm:"column:gos_num;index" json:"gos_num,omitempty"`
	Conclusion       *string `json:"conclusion,omitempty"`
}

func (TechnicalInspection) TableName() string { return "technical_inspections" }
