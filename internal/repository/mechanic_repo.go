package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

type MechanicRepository struct {
	db *gorm.DB
}

func NewMechanicRepository(db *gorm.DB) *MechanicRepository {
	return &MechanicRepository{db: db}
}

func (r *MechanicRepository) List(ctx context.Context) ([]models.Mechanic, error) {
	var mecs []models.Mechanic
	if err := r.db.WithContext(ctx).Find(&mecs).Error; err != nil {
		return nil, err
	}
	return mecs, nil
}

func (r *MechanicRepository) Get(ctx context.Context, passportNumber string) (*models.Mechanic, error) {
	var mec models.Mechanic
	if err := r.db.WithContext(ctx).First(&mec, "passport_number = ?", passportNumber).Error; err != nil {
		return nil, translateGet(err, "mechanic", passportNumber)
	}
	return &mec, nil
}

func (r *MechanicRepository) Create(ctx context.Context, mec *models.Mechanic) error {
	return translateCreate(r.db.WithContext(ctx).Create(mec).Error, "mechanic", mec.PassportNumber)
}

// Update replaces every non-key column; zero values overwrite.
func (r *MechanicRepository) Update(ctx context.Context, passportNumber string, mec *models.Mechanic) error {
	res := r.db.WithContext(ctx).Model(&models.Mechanic{}).
		Where("passport_number = ?", passportNumber).
		Select("full_name", "experience_years").
		Updates(mec)
	if err := checkAffected(res, "mechanic", passportNumber); err != nil {
		return err
	}
	mec.PassportNumber = passportNumber
	return nil
}

func (r *MechanicRepository) Delete(ctx context.Context, passportNumber string) error {
	res := r.db.WithContext(ctx).Delete(&models.Mechanic{}, "passport_number = ?", passportNumber)
	return checkAffected(res, "mechanic", passportNumber)
}
