package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) List(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := r.db.WithContext(ctx).Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *DriverRepository) Get(ctx context.Context, passportNumber string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).First(&driver, "passport_number = ?", passportNumber).Error; err != nil {
		return nil, translateGet(err, "driver", passportNumber)
	}
	return &driver, nil
}

func (r *DriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	return translateCreate(r.db.WithContext(ctx).Create(driver).Error, "driver", driver.PassportNumber)
}

func (r *DriverRepository) Update(ctx context.Context, passportNumber string, driver *models.Driver) error {
	res := r.db.WithContext(ctx).Model(&models.Driver{}).
		Where("passport_number = ?", passportNumber).
		Select("full_name", "id_company", "experience_years", "routes_served",
			"contract_number", "contract_start", "contract_end").
		Updates(driver)
	if err := checkAffected(res, "driver", passportNumber); err != nil {
		return err
	}
	driver.PassportNumber = passportNumber
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, passportNumber string) error {
	res := r.db.WithContext(ctx).Delete(&models.Driver{}, "passport_number = ?", passportNumber)
	return checkAffected(res, "driver", passportNumber)
}
