package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type RouteController struct {
	routes *repository.RouteRepository
}

func NewRouteController(routes *repository.RouteRepository) *RouteController {
	return &RouteController{routes: routes}
}

func (rc *RouteController) List(c *gin.Context) {
	routes, err := rc.routes.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (rc *RouteController) Get(c *gin.Context) {
	n, ok := intParam(c, "route_number")
	if !ok {
		return
	}
	route, err := rc.routes.Get(c.Request.Context(), n)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (rc *RouteController) Create(c *gin.Context) {
	var route models.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := rc.routes.Create(c.Request.Context(), &route); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (rc *RouteController) Update(c *gin.Context) {
	n, ok := intParam(c, "route_number")
	if !ok {
		return
	}
	var route models.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := rc.routes.Update(c.Request.Context(), n, &route); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (rc *RouteController) Delete(c *gin.Context) {
	n, ok := intParam(c, "route_number")
	if !ok {
		return
	}
	if err := rc.routes.Delete(c.Request.Context(), n); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
