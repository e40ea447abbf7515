package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type InspectionController struct {
	inspections *repository.TechnicalInspectionRepository
}

func NewInspectionController(inspections *repository.TechnicalInspectionRepository) *InspectionController {
	return &InspectionController{inspections: inspections}
}

func (ic *InspectionController) List(c *gin.Context) {
	inspections, err := ic.inspections.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, inspections)
}

func (ic *InspectionController) Get(c *gin.Context) {
	id, ok := intParam(c, "inspection_id")
	if !ok {
		return
	}
	inspection, err := ic.inspections.Get(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, inspection)
}

func (ic *InspectionController) Create(c *gin.Context) {
	var inspection models.TechnicalInspection
	if err := c.ShouldBindJSON(&inspection); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ic.inspections.Create(c.Request.Context(), &inspection); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inspection)
}

func (ic *InspectionController) Update(c *gin.Context) {
	id, ok := intParam(c, "inspection_id")
	if !ok {
		return
	}
	var inspection models.TechnicalInspection
	if err := c.ShouldBindJSON(&inspection); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ic.inspections.Update(c.Request.Context(), id, &inspection); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, inspection)
}

func (ic *InspectionController) Delete(c *gin.Context) {
	id, ok := intParam(c, "inspection_id")
	if !ok {
		return
	}
	if err := ic.inspections.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
