// Package controllers binds HTTP routes to repository calls. Controllers
// are plain structs constructed in main with their dependencies; none of
// them touch package-level state.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"bus_depot/internal/geo"
	"bus_depot/internal/repository"
)

// respondRepoError applies the one mapping rule shared by every entity:
// NotFound -> 404, AlreadyExists -> 409, anything else is a logged 500
// with no internals leaked.
func respondRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("unexpected repository error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// intParam parses an integer path parameter, answering 400 itself on
// failure. The bool reports whether the caller may proceed.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// coordParams parses the latitude/longitude path parameter pair into the
// fixed-precision key representation.
func coordParams(c *gin.Context) (lat, lng geo.Degrees, ok bool) {
	lat, err := geo.Parse(c.Param("latitude"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return 0, 0, false
	}
	lng, err = geo.Parse(c.Param("longitude"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return 0, 0, false
	}
	return lat, lng, true
}
