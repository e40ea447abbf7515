package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) List(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := r.db.WithContext(ctx).Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) Get(ctx context.Context, tripID int) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.WithContext(ctx).First(&trip, "trip_id = ?", tripID).Error; err != nil {
		return nil, translateGet(err, "trip", tripID)
	}
	return &trip, nil
}

func (r *TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	return translateCreate(r.db.WithContext(ctx).Create(trip).Error, "trip", trip.TripID)
}

func (r *TripRepository) Update(ctx context.Context, tripID int, trip *models.Trip) error {
	res := r.db.WithContext(ctx).Model(&models.Trip{}).
		Where("trip_id = ?", tripID).
		Select("driver_passport", "route_number", "gos_num", "trip_date", "start_time", "end_time").
		Updates(trip)
	if err := checkAffected(res, "trip", tripID); err != nil {
		return err
	}
	trip.TripID = tripID
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, tripID int) error {
	res := r.db.WithContext(ctx).Delete(&models.Trip{}, "trip_id = ?", tripID)
	return checkAffected(res, "trip", tripID)
}
