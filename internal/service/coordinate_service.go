package service

import (
	"context"
	"fmt"

	"dms-converter/internal/dms"
)

// CoordinateService converts single DMS values for the HTTP API
type CoordinateService struct {
	strict bool
}

// NewCoordinateService creates a new coordinate service
func NewCoordinateService(strict bool) *CoordinateService {
	return &CoordinateService{strict: strict}
}

// Convert parses text in the named hemisphere. Blank text yields an invalid
// Decimal and no error.
func (s *CoordinateService) Convert(ctx context.Context, text, hemisphere string) (dms.Decimal, error) {
	h, err := dms.ParseHemisphere(hemisphere)
	if err != nil {
		return dms.Decimal{}, fmt.Errorf("service: %w", err)
	}

	parse := dms.Parse
	if s.strict {
		parse = dms.ParseStrict
	}
	d, err := parse(text, h)
	if err != nil {
		return dms.Decimal{}, fmt.Errorf("service: %w", err)
	}
	return d, nil
}
