package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type DriverController struct {
	drivers *repository.DriverRepository
}

func NewDriverController(drivers *repository.DriverRepository) *DriverController {
	return &DriverController{drivers: drivers}
}

func (dc *DriverController) List(c *gin.Context) {
	drivers, err := dc.drivers.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (dc *DriverController) Get(c *gin.Context) {
	driver, err := dc.drivers.Get(c.Request.Context(), c.Param("passport_number"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (dc *DriverController) Create(c *gin.Context) {
	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dc.drivers.Create(c.Request.Context(), &driver); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

func (dc *DriverController) Update(c *gin.Context) {
	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dc.drivers.Update(c.Request.Context(), c.Param("passport_number"), &driver); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (dc *DriverController) Delete(c *gin.Context) {
	if err := dc.drivers.Delete(c.Request.Context(), c.Param("passport_number")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
