package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/geo"
	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

// RouteStopController covers the route-stop junction: list, attach,
// detach. Junction rows have no non-key fields to update.
type RouteStopController struct {
	routeStops *repository.RouteStopRepository
}

func NewRouteStopController(routeStops *repository.RouteStopRepository) *RouteStopController {
	return &RouteStopController{routeStops: routeStops}
}

// routeStopInput requires every part of the composite key, with pointers
// so zero values still count as present.
type routeStopInput struct {
	Latitude    *geo.Degrees `json:"latitude" binding:"required"`
	Longitude   *geo.Degrees `json:"longitude" binding:"required"`
	RouteNumber *int         `json:"route_number" binding:"required"`
}

func (in routeStopInput) toModel() models.RouteStop {
	return models.RouteStop{
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		RouteNumber: *in.RouteNumber,
	}
}

func (rc *RouteStopController) List(c *gin.Context) {
	routeStops, err := rc.routeStops.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, routeStops)
}

func (rc *RouteStopController) Create(c *gin.Context) {
	var in routeStopInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	routeStop := in.toModel()
	if err := rc.routeStops.Create(c.Request.Context(), &routeStop); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routeStop)
}

func (rc *RouteStopController) Delete(c *gin.Context) {
	lat, lng, ok := coordParams(c)
	if !ok {
		return
	}
	routeNumber, ok := intParam(c, "route_number")
	if !ok {
		return
	}
	if err := rc.routeStops.Delete(c.Request.Context(), lat, lng, routeNumber); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
