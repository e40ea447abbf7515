package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

type TechnicalInspectionRepository struct {
	db *gorm.DB
}

func NewTechnicalInspectionRepository(db *gorm.DB) *TechnicalInspectionRepository {
	return &TechnicalInspectionRepository{db: db}
}

func (r *TechnicalInspectionRepository) List(ctx context.Context) ([]models.TechnicalInspection, error) {
	var inspections []models.TechnicalInspection
	if err := r.db.WithContext(ctx).Find(&inspections).Error; err != nil {
		return nil, err
	}
	return inspections, nil
}

func (r *TechnicalInspectionRepository) Get(ctx context.Context, inspectionID int) (*models.TechnicalInspection, error) {
	var inspection models.TechnicalInspection
	if err := r.db.WithContext(ctx).First(&inspection, "inspection_id = ?", inspectionID).Error; err != nil {
		return nil, translateGet(err, "inspection", inspectionID)
	}
	return &inspection, nil
}

func (r *TechnicalInspectionRepository) Create(ctx context.Context, inspection *models.TechnicalInspection) error {
	return translateCreate(r.db.WithContext(ctx).Create(inspection).Error, "inspection", inspection.InspectionID)
}

func (r *TechnicalInspectionRepository) Update(ctx context.Context, inspectionID int, inspection *models.TechnicalInspection) error {
	res := r.db.WithContext(ctx).Model(&models.TechnicalInspection{}).
		Where("inspection_id = ?", inspectionID).
		Select("mechanic_passport", "gos_num", "conclusion").
		Updates(inspection)
	if err := checkAffected(res, "inspection", inspectionID); err != nil {
		return err
	}
	inspection.InspectionID = inspectionID
	return nil
}

func (r *TechnicalInspectionRepository) Delete(ctx context.Context, inspectionID int) error {
	res := r.db.WithContext(ctx).Delete(&models.TechnicalInspection{}, "inspection_id = ?", inspectionID)
	return checkAffected(res, "inspection", inspectionID)
}
