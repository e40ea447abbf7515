package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bus_depot/internal/geo"
	"bus_depot/internal/models"
)

// coordKey prints a composite coordinate key for error messages.
func coordKey(lat, lng geo.Degrees) string {
	return fmt.Sprintf("(%s, %s)", lat, lng)
}

type StopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) *StopRepository {
	return &StopRepository{db: db}
}

func (r *StopRepository) List(ctx context.Context) ([]models.Stop, error) {
	var stops []models.Stop
	if err := r.db.WithContext(ctx).Find(&stops).Error; err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *StopRepository) Get(ctx context.Context, lat, lng geo.Degrees) (*models.Stop, error) {
	var stop models.Stop
	err := r.db.WithContext(ctx).
		First(&stop, "latitude_e6 = ? AND longitude_e6 = ?", lat, lng).Error
	if err != nil {
		return nil, translateGet(err, "stop", coordKey(lat, lng))
	}
	return &stop, nil
}

func (r *StopRepository) Create(ctx context.Context, stop *models.Stop) error {
	err := r.db.WithContext(ctx).Create(stop).Error
	return translateCreate(err, "stop", coordKey(stop.Latitude, stop.Longitude))
}

func (r *StopRepository) Update(ctx context.Context, lat, lng geo.Degrees, stop *models.Stop) error {
	res := r.db.WithContext(ctx).Model(&models.Stop{}).
		Where("latitude_e6 = ? AND longitude_e6 = ?", lat, lng).
		Select("stop_name", "address").
		Updates(stop)
	if err := checkAffected(res, "stop", coordKey(lat, lng)); err != nil {
		return err
	}
	stop.Latitude = lat
	stop.Longitude = lng
	return nil
}

func (r *StopRepository) Delete(ctx context.Context, lat, lng geo.Degrees) error {
	res := r.db.WithContext(ctx).
		Delete(&models.Stop{}, "latitude_e6 = ? AND longitude_e6 = ?", lat, lng)
	return checkAffected(res, "stop", coordKey(lat, lng))
}
