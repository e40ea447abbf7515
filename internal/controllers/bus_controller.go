package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type BusController struct {
	buses *repository.BusRepository
}

func NewBusController(buses *repository.BusRepository) *BusController {
	return &BusController{buses: buses}
}

func (bc *BusController) List(c *gin.Context) {
	buses, err := bc.buses.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

func (bc *BusController) Get(c *gin.Context) {
	bus, err := bc.buses.Get(c.Request.Context(), c.Param("gos_num"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

func (bc *BusController) Create(c *gin.Context) {
	var bus models.Bus
	if err := c.ShouldBindJSON(&bus); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if bus.GosNum == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gos_num is required"})
		return
	}
	if err := bc.buses.Create(c.Request.Context(), &bus); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bus)
}

func (bc *BusController) Update(c *gin.Context) {
	var bus models.Bus
	if err := c.ShouldBindJSON(&bus); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := bc.buses.Update(c.Request.Context(), c.Param("gos_num"), &bus); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

func (bc *BusController) Delete(c *gin.Context) {
	if err := bc.buses.Delete(c.Request.Context(), c.Param("gos_num")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
