package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

type BusRepository struct {
	db *gorm.DB
}

func NewBusRepository(db *gorm.DB) *BusRepository {
	return &BusRepository{db: db}
}

func (r *BusRepository) List(ctx context.Context) ([]models.Bus, error) {
	var buses []models.Bus
	if err := r.db.WithContext(ctx).Find(&buses).Error; err != nil {
		return nil, err
	}
	return buses, nil
}

func (r *BusRepository) Get(ctx context.Context, gosNum string) (*models.Bus, error) {
	var bus models.Bus
	if err := r.db.WithContext(ctx).First(&bus, "gos_num = ?", gosNum).Error; err != nil {
		return nil, translateGet(err, "bus", gosNum)
	}
	return &bus, nil
}

func (r *BusRepository) Create(ctx context.Context, bus *models.Bus) error {
	return translateCreate(r.db.WithContext(ctx).Create(bus).Error, "bus", bus.GosNum)
}

func (r *BusRepository) Update(ctx context.Context, gosNum string, bus *models.Bus) error {
	res := r.db.WithContext(ctx).Model(&models.Bus{}).
		Where("gos_num = ?", gosNum).
		Select("brand", "model", "manufacture_year", "owner_company", "route_number",
			"technical_condition", "driver_passport", "capacity", "registration_date").
		Updates(bus)
	if err := checkAffected(res, "bus", gosNum); err != nil {
		return err
	}
	bus.GosNum = gosNum
	return nil
}

func (r *BusRepository) Delete(ctx context.Context, gosNum string) error {
	res := r.db.WithContext(ctx).Delete(&models.Bus{}, "gos_num = ?", gosNum)
	return checkAffected(res, "bus", gosNum)
}
