package handler

import "github.com/gin-gonic/gin"

// NewRouter registers the API routes on a fresh gin engine. The nearest
// point route is only served when nearest is non-nil.
func NewRouter(coords CoordinateService, nearest NearestPointService) *gin.Engine {
	r := gin.Default()

	convertHandler := NewConvertHandler(coords)

	r.GET("/health", Health)
	r.GET("/convert", convertHandler.Convert)
	r.POST("/convert/batch", convertHandler.ConvertBatch)

	if nearest != nil {
		r.GET("/points/nearest", NewNearestPointHandler(nearest).FindNearest)
	}

	return r
}
