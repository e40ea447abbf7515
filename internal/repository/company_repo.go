package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) Get(ctx context.Context, idCompany int) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id_company = ?", idCompany).Error; err != nil {
		return nil, translateGet(err, "company", idCompany)
	}
	return &company, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return translateCreate(r.db.WithContext(ctx).Create(company).Error, "company", company.IDCompany)
}

func (r *CompanyRepository) Update(ctx context.Context, idCompany int, company *models.Company) error {
	res := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id_company = ?", idCompany).
		Select("company_name", "company_address", "phone_number", "employees", "routes_served").
		Updates(company)
	if err := checkAffected(res, "company", idCompany); err != nil {
		return err
	}
	company.IDCompany = idCompany
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, idCompany int) error {
	res := r.db.WithContext(ctx).Delete(&models.Company{}, "id_company = ?", idCompany)
	return checkAffected(res, "company", idCompany)
}
