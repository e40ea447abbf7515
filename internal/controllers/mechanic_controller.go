package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type MechanicController struct {
	mechanics *repository.MechanicRepository
}

func NewMechanicController(mechanics *repository.MechanicRepository) *MechanicController {
	return &MechanicController{mechanics: mechanics}
}

func (mc *MechanicController) List(c *gin.Context) {
	mecs, err := mc.mechanics.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, mecs)
}

func (mc *MechanicController) Get(c *gin.Context) {
	mec, err := mc.mechanics.Get(c.Request.Context(), c.Param("passport_number"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, mec)
}

func (mc *MechanicController) Create(c *gin.Context) {
	var mec models.Mechanic
	if err := c.ShouldBindJSON(&mec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := mc.mechanics.Create(c.Request.Context(), &mec); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mec)
}

func (mc *MechanicController) Update(c *gin.Context) {
	var mec models.Mechanic
	if err := c.ShouldBindJSON(&mec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := mc.mechanics.Update(c.Request.Context(), c.Param("passport_number"), &mec); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, mec)
}

func (mc *MechanicController) Delete(c *gin.Context) {
	if err := mc.mechanics.Delete(c.Request.Context(), c.Param("passport_number")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
