package service

import (
	"context"
	"fmt"
	"path/filepath"

	"dms-converter/internal/models"
)

// PointRepository interface for dependency injection
type PointRepository interface {
	CreateSchema(ctx context.Context) error
	ReplacePoints(ctx context.Context, source string, points []models.Point) (int64, error)
	CountPoints(ctx context.Context, source string) (int, error)
}

// Converter runs the conversion pipeline
type Converter interface {
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)
}

// ImportService converts a table and loads its points into the database
type ImportService struct {
	converter Converter
	repo      PointRepository
}

// NewImportService creates a new import service
func NewImportService(converter Converter, repo PointRepository) *ImportService {
	return &ImportService{converter: converter, repo: repo}
}

// ImportResult summarizes an import.
type ImportResult struct {
	*ConvertResult
	Source   string
	Imported int64
}

// Import converts req, then replaces the stored points for the input file's
// base name with the converted ones. Rows where either value was blank are
// skipped. The stored count is checked against what was copied.
func (s *ImportService) Import(ctx context.Context, req ConvertRequest) (*ImportResult, error) {
	converted, err := s.converter.Convert(ctx, req)
	if err != nil {
		return nil, err
	}

	source := filepath.Base(req.InputPath)
	if err := s.repo.CreateSchema(ctx); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	n, err := s.repo.ReplacePoints(ctx, source, converted.Points)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	count, err := s.repo.CountPoints(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if int64(count) != n {
		return nil, fmt.Errorf("service: record count mismatch: expected %d, got %d", n, count)
	}

	return &ImportResult{ConvertResult: converted, Source: source, Imported: n}, nil
}
