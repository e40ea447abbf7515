package models

type Company struct {
	IDCompany      int     `gorm:"column:id_company;primaryKey;autoIncrement" json:"id_company"`
	CompanyName    string  `gorm:"not null" json:"company_name" binding:"required"`
	CompanyAddress *string `json:"company_address,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Employees      *string `json:"employees,omitempty"`
	RoutesServed   *string `json:"routes_served,omitempty"`
}

func (Company) TableName() string { return "companies" }
