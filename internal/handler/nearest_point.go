package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"dms-converter/internal/models"
	"dms-converter/internal/service"

	"github.com/gin-gonic/gin"
)

// NearestPointHandler handles nearest point requests
type NearestPointHandler struct {
	service NearestPointService
}

// Service interface for dependency injection
type NearestPointService interface {
	FindNearest(context.Context, float64, float64) (*models.Point, error)
}

// NewNearestPointHandler creates a new nearest point handler
func NewNearestPointHandler(svc NearestPointService) *NearestPointHandler {
	return &NearestPointHandler{service: svc}
}

// FindNearest handles GET /points/nearest requests
func (h *NearestPointHandler) FindNearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	point, err := h.service.FindNearest(c.Request.Context(), lat, lon)
	if errors.Is(err, service.ErrCoordinateRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if point == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no point found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, point)
}
