package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bus_depot/internal/geo"
	"bus_depot/internal/models"
)

// junctionKey prints the composite (lat, lng, route) key for error messages.
func junctionKey(lat, lng geo.Degrees, routeNumber int) string {
	return fmt.Sprintf("(%s, %s, %d)", lat, lng, routeNumber)
}

// RouteStopRepository manages the route-stop junction. Junction rows are
// pure associations, so only list/create/delete exist.
type RouteStopRepository struct {
	db *gorm.DB
}

func NewRouteStopRepository(db *gorm.DB) *RouteStopRepository {
	return &RouteStopRepository{db: db}
}

func (r *RouteStopRepository) List(ctx context.Context) ([]models.RouteStop, error) {
	var routeStops []models.RouteStop
	if err := r.db.WithContext(ctx).Find(&routeStops).Error; err != nil {
		return nil, err
	}
	return routeStops, nil
}

func (r *RouteStopRepository) Create(ctx context.Context, routeStop *models.RouteStop) error {
	err := r.db.WithContext(ctx).Create(routeStop).Error
	return translateCreate(err, "route stop",
		junctionKey(routeStop.Latitude, routeStop.Longitude, routeStop.RouteNumber))
}

func (r *RouteStopRepository) Delete(ctx context.Context, lat, lng geo.Degrees, routeNumber int) error {
	res := r.db.WithContext(ctx).
		Delete(&models.RouteStop{}, "latitude_e6 = ? AND longitude_e6 = ? AND route_number = ?", lat, lng, routeNumber)
	return checkAffected(res, "route stop", junctionKey(lat, lng, routeNumber))
}
