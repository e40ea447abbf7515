package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

type RepairRequestRepository struct {
	db *gorm.DB
}

func NewRepairRequestRepository(db *gorm.DB) *RepairRequestRepository {
	return &RepairRequestRepository{db: db}
}

func (r *RepairRequestRepository) List(ctx context.Context) ([]models.RepairRequest, error) {
	var requests []models.RepairRequest
	if err := r.db.WithContext(ctx).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RepairRequestRepository) Get(ctx context.Context, requestID int) (*models.RepairRequest, error) {
	var request models.RepairRequest
	if err := r.db.WithContext(ctx).First(&request, "request_id = ?", requestID).Error; err != nil {
		return nil, translateGet(err, "repair request", requestID)
	}
	return &request, nil
}

func (r *RepairRequestRepository) Create(ctx context.Context, request *models.RepairRequest) error {
	return translateCreate(r.db.WithContext(ctx).Create(request).Error, "repair request", request.RequestID)
}

func (r *RepairRequestRepository) Update(ctx context.Context, requestID int, request *models.RepairRequest) error {
	res := r.db.WithContext(ctx).Model(&models.RepairRequest{}).
		Where("request_id = ?", requestID).
		Select("gos_num", "repair_cost", "repair_duration").
		Updates(request)
	if err := checkAffected(res, "repair request", requestID); err != nil {
		return err
	}
	request.RequestID = requestID
	return nil
}

func (r *RepairRequestRepository) Delete(ctx context.Context, requestID int) error {
	res := r.db.WithContext(ctx).Delete(&models.RepairRequest{}, "request_id = ?", requestID)
	return checkAffected(res, "repair request", requestID)
}
