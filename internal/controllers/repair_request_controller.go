package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type RepairRequestController struct {
	requests *repository.RepairRequestRepository
}

func NewRepairRequestController(requests *repository.RepairRequestRepository) *RepairRequestController {
	return &RepairRequestController{requests: requests}
}

func (rc *RepairRequestController) List(c *gin.Context) {
	requests, err := rc.requests.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (rc *RepairRequestController) Get(c *gin.Context) {
	id, ok := intParam(c, "request_id")
	if !ok {
		return
	}
	request, err := rc.requests.Get(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (rc *RepairRequestController) Create(c *gin.Context) {
	var request models.RepairRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := rc.requests.Create(c.Request.Context(), &request); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (rc *RepairRequestController) Update(c *gin.Context) {
	id, ok := intParam(c, "request_id")
	if !ok {
		return
	}
	var request models.RepairRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := rc.requests.Update(c.Request.Context(), id, &request); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (rc *RepairRequestController) Delete(c *gin.Context) {
	id, ok := intParam(c, "request_id")
	if !ok {
		return
	}
	if err := rc.requests.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
