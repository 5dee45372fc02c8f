package service

import (
	"context"
	"errors"
	"fmt"

	"dms-converter/internal/models"
)

// DefaultSearchRadius bounds nearest point lookups, in meters.
const DefaultSearchRadius = 10000

// ErrCoordinateRange is returned for a latitude or longitude outside the globe.
var ErrCoordinateRange = errors.New("coordinate out of range")

// NearestPointRepository interface for dependency injection
type NearestPointRepository interface {
	FindNearestPoint(ctx context.Context, lat, lon, maxMeters float64) (*models.Point, error)
}

// NearestPointService finds imported points close to a coordinate
type NearestPointService struct {
	repo NearestPointRepository
}

// NewNearestPointService creates a new nearest point service
func NewNearestPointService(repo NearestPointRepository) *NearestPointService {
	return &NearestPointService{repo: repo}
}

// FindNearest returns the imported point closest to lat, lon within
// DefaultSearchRadius, or nil when there is none.
func (s *NearestPointService) FindNearest(ctx context.Context, lat, lon float64) (*models.Point, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("service: invalid latitude %f: %w", lat, ErrCoordinateRange)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: invalid longitude %f: %w", lon, ErrCoordinateRange)
	}

	point, err := s.repo.FindNearestPoint(ctx, lat, lon, DefaultSearchRadius)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest point: %w", err)
	}

	return point, nil
}
