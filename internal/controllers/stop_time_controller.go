package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/geo"
	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type StopTimeController struct {
	stopTimes *repository.StopTimeRepository
}

func NewStopTimeController(stopTimes *repository.StopTimeRepository) *StopTimeController {
	return &StopTimeController{stopTimes: stopTimes}
}

type stopTimeInput struct {
	Latitude      *geo.Degrees `json:"latitude" binding:"required"`
	Longitude     *geo.Degrees `json:"longitude" binding:"required"`
	RouteNumber   *int         `json:"route_number" binding:"required"`
	ArrivalTime   *string      `json:"arrival_time"`
	DepartureTime *string      `json:"departure_time"`
}

func (in stopTimeInput) toModel() models.StopTime {
	return models.StopTime{
		Latitude:      *in.Latitude,
		Longitude:     *in.Longitude,
		RouteNumber:   *in.RouteNumber,
		ArrivalTime:   in.ArrivalTime,
		DepartureTime: in.DepartureTime,
	}
}

func (sc *StopTimeController) List(c *gin.Context) {
	stopTimes, err := sc.stopTimes.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, stopTimes)
}

func (sc *StopTimeController) Create(c *gin.Context) {
	var in stopTimeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stopTime := in.toModel()
	if err := sc.stopTimes.Create(c.Request.Context(), &stopTime); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stopTime)
}

func (sc *StopTimeController) Delete(c *gin.Context) {
	lat, lng, ok := coordParams(c)
	if !ok {
		return
	}
	routeNumber, ok := intParam(c, "route_number")
	if !ok {
		return
	}
	if err := sc.stopTimes.Delete(c.Request.Context(), lat, lng, routeNumber); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
