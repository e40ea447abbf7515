package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) List(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	if err := r.db.WithContext(ctx).Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *RouteRepository) Get(ctx context.Context, routeNumber int) (*models.Route, error) {
	var route models.Route
	if err := r.db.WithContext(ctx).First(&route, "route_number = ?", routeNumber).Error; err != nil {
		return nil, translateGet(err, "route", routeNumber)
	}
	return &route, nil
}

func (r *RouteRepository) Create(ctx context.Context, route *models.Route) error {
	return translateCreate(r.db.WithContext(ctx).Create(route).Error, "route", route.RouteNumber)
}

func (r *RouteRepository) Update(ctx context.Context, routeNumber int, route *models.Route) error {
	res := r.db.WithContext(ctx).Model(&models.Route{}).
		Where("route_number = ?", routeNumber).
		Select("start_stop", "end_stop", "stops_count", "interval", "ticket_price", "first_adv", "last_adv", "stops_list").
		Updates(route)
	if err := checkAffected(res, "route", routeNumber); err != nil {
		return err
	}
	route.RouteNumber = routeNumber
	return nil
}

func (r *RouteRepository) Delete(ctx context.Context, routeNumber int) error {
	res := r.db.WithContext(ctx).Delete(&models.Route{}, "route_number = ?", routeNumber)
	return checkAffected(res, "route", routeNumber)
}
