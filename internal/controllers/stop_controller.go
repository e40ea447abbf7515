package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/geo"
	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type StopController struct {
	stops *repository.StopRepository
}

func NewStopController(stops *repository.StopRepository) *StopController {
	return &StopController{stops: stops}
}

// stopInput is the create payload. Coordinates are pointers so a missing
// field is told apart from a legal zero degree.
type stopInput struct {
	Latitude  *geo.Degrees `json:"latitude" binding:"required"`
	Longitude *geo.Degrees `json:"longitude" binding:"required"`
	StopName  *string      `json:"stop_name"`
	Address   *string      `json:"address"`
}

func (in stopInput) toModel() models.Stop {
	return models.Stop{
		Latitude:  *in.Latitude,
		Longitude: *in.Longitude,
		StopName:  in.StopName,
		Address:   in.Address,
	}
}

func (sc *StopController) List(c *gin.Context) {
	stops, err := sc.stops.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

func (sc *StopController) Get(c *gin.Context) {
	lat, lng, ok := coordParams(c)
	if !ok {
		return
	}
	stop, err := sc.stops.Get(c.Request.Context(), lat, lng)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

func (sc *StopController) Create(c *gin.Context) {
	var in stopInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stop := in.toModel()
	if err := sc.stops.Create(c.Request.Context(), &stop); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stop)
}

func (sc *StopController) Update(c *gin.Context) {
	lat, lng, ok := coordParams(c)
	if !ok {
		return
	}
	var stop models.Stop
	if err := c.ShouldBindJSON(&stop); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sc.stops.Update(c.Request.Context(), lat, lng, &stop); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

func (sc *StopController) Delete(c *gin.Context) {
	lat, lng, ok := coordParams(c)
	if !ok {
		return
	}
	if err := sc.stops.Delete(c.Request.Context(), lat, lng); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
