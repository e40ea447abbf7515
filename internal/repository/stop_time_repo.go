package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/geo"
	"bus_depot/internal/models"
)

type StopTimeRepository struct {
	db *gorm.DB
}

func NewStopTimeRepository(db *gorm.DB) *StopTimeRepository {
	return &StopTimeRepository{db: db}
}

func (r *StopTimeRepository) List(ctx context.Context) ([]models.StopTime, error) {
	var stopTimes []models.StopTime
	if err := r.db.WithContext(ctx).Find(&stopTimes).Error; err != nil {
		return nil, err
	}
	return stopTimes, nil
}

func (r *StopTimeRepository) Create(ctx context.Context, stopTime *models.StopTime) error {
	err := r.db.WithContext(ctx).Create(stopTime).Error
	return translateCreate(err, "stop time",
		junctionKey(stopTime.Latitude, stopTime.Longitude, stopTime.RouteNumber))
}

func (r *StopTimeRepository) Delete(ctx context.Context, lat, lng geo.Degrees, routeNumber int) error {
	res := r.db.WithContext(ctx).
		Delete(&models.StopTime{}, "latitude_e6 = ? AND longitude_e6 = ? AND route_number = ?", lat, lng, routeNumber)
	return checkAffected(res, "stop time", junctionKey(lat, lng, routeNumber))
}
