package handler

import (
	"context"
	"errors"
	"net/http"

	"dms-converter/internal/dms"

	"github.com/gin-gonic/gin"
)

// ConvertHandler handles DMS conversion requests
type ConvertHandler struct {
	service CoordinateService
}

// Service interface for dependency injection
type CoordinateService interface {
	Convert(ctx context.Context, text, hemisphere string) (dms.Decimal, error)
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(svc CoordinateService) *ConvertHandler {
	return &ConvertHandler{service: svc}
}

// ConvertResponse is one converted value. Decimal is null for blank input.
type ConvertResponse struct {
	Input      string   `json:"input"`
	Hemisphere string   `json:"hemisphere"`
	Decimal    *float64 `json:"decimal"`
}

// BatchItem is one value in a batch request
type BatchItem struct {
	DMS        string `json:"dms"`
	Hemisphere string `json:"hemisphere" binding:"required"`
}

// BatchRequest is the body of POST /convert/batch
type BatchRequest struct {
	Items []BatchItem `json:"items" binding:"required,dive"`
}

// Convert handles GET /convert requests
func (h *ConvertHandler) Convert(c *gin.Context) {
	text := c.Query("dms")
	hemisphere := c.Query("hemisphere")
	if hemisphere == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'hemisphere'"})
		return
	}

	resp, status, msg := h.convert(c.Request.Context(), text, hemisphere)
	if status != http.StatusOK {
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ConvertBatch handles POST /convert/batch requests. The first invalid item
// fails the whole batch.
func (h *ConvertHandler) ConvertBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	results := make([]ConvertResponse, 0, len(req.Items))
	for i, item := range req.Items {
		resp, status, msg := h.convert(c.Request.Context(), item.DMS, item.Hemisphere)
		if status != http.StatusOK {
			c.JSON(status, gin.H{"error": msg, "index": i})
			return
		}
		results = append(results, resp)
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *ConvertHandler) convert(ctx context.Context, text, hemisphere string) (ConvertResponse, int, string) {
	d, err := h.service.Convert(ctx, text, hemisphere)
	switch {
	case errors.Is(err, dms.ErrHemisphere):
		return ConvertResponse{}, http.StatusBadRequest, "hemisphere must be one of N, S, E, W"
	case errors.Is(err, dms.ErrFormat):
		return ConvertResponse{}, http.StatusBadRequest, err.Error()
	case err != nil:
		return ConvertResponse{}, http.StatusInternalServerError, "internal server error"
	}

	resp := ConvertResponse{Input: text, Hemisphere: hemisphere}
	if d.Valid {
		v := d.Degrees
		resp.Decimal = &v
	}
	return resp, http.StatusOK, ""
}
