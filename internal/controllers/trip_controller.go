package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type TripController struct {
	trips *repository.TripRepository
}

func NewTripController(trips *repository.TripRepository) *TripController {
	return &TripController{trips: trips}
}

func (tc *TripController) List(c *gin.Context) {
	trips, err := tc.trips.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (tc *TripController) Get(c *gin.Context) {
	id, ok := intParam(c, "trip_id")
	if !ok {
		return
	}
	trip, err := tc.trips.Get(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) Create(c *gin.Context) {
	var trip models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := tc.trips.Create(c.Request.Context(), &trip); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (tc *TripController) Update(c *gin.Context) {
	id, ok := intParam(c, "trip_id")
	if !ok {
		return
	}
	var trip models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := tc.trips.Update(c.Request.Context(), id, &trip); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) Delete(c *gin.Context) {
	id, ok := intParam(c, "trip_id")
	if !ok {
		return
	}
	if err := tc.trips.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
