package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"dms-converter/internal/dms"
	"dms-converter/internal/models"

	"github.com/rs/zerolog"
)

// TableStore interface for dependency injection
type TableStore interface {
	Load(path, sheet string) (*models.Table, error)
	Save(path string, table *models.Table) error
}

// Column names a DMS text column and the hemisphere its values lie in.
type Column struct {
	Name       string
	Hemisphere dms.Hemisphere
}

// ConvertRequest describes one run of the pipeline.
type ConvertRequest struct {
	InputPath  string
	OutputPath string
	Sheet      string
	Longitude  Column
	Latitude   Column
	Suffix     string
	Strict     bool
}

// ConvertResult is what a successful run produced.
type ConvertResult struct {
	OutputPath      string
	InputColumns    []string
	Table           *models.Table
	LongitudeColumn string
	LatitudeColumn  string
	Points          []models.Point
}

// ErrColumnConflict is returned when a derived column name would replace one
// of the source columns.
var ErrColumnConflict = errors.New("derived column name collides with a source column")

// ConvertService reads a table, adds decimal-degree columns and writes it back out
type ConvertService struct {
	store TableStore
	log   zerolog.Logger
}

// NewConvertService creates a new convert service
func NewConvertService(store TableStore, log zerolog.Logger) *ConvertService {
	return &ConvertService{store: store, log: log}
}

// Convert runs the pipeline. Nothing is written unless every row converts:
// the first bad cell aborts the run.
func (s *ConvertService) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	if req.InputPath == "" || req.OutputPath == "" {
		return nil, fmt.Errorf("service: input and output paths are required")
	}
	lonOut, latOut := req.Longitude.Name+req.Suffix, req.Latitude.Name+req.Suffix
	for _, name := range []string{lonOut, latOut} {
		if name == req.Longitude.Name || name == req.Latitude.Name {
			return nil, fmt.Errorf("service: %w: %q", ErrColumnConflict, name)
		}
	}

	table, err := s.store.Load(req.InputPath, req.Sheet)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("service: %s: %w", req.InputPath, ErrNotFound)
		}
		return nil, fmt.Errorf("service: failed to load table: %w", err)
	}
	inputColumns := append([]string(nil), table.Columns...)
	s.log.Debug().Str("input", req.InputPath).Strs("columns", table.Columns).Int("rows", len(table.Rows)).Msg("table loaded")

	lonCol, latCol := table.ColumnIndex(req.Longitude.Name), table.ColumnIndex(req.Latitude.Name)
	var missing []string
	if lonCol < 0 {
		missing = append(missing, req.Longitude.Name)
	}
	if latCol < 0 {
		missing = append(missing, req.Latitude.Name)
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing, Available: table.Columns}
	}

	lons, err := s.convertColumn(table, lonCol, req.Longitude, req.Strict)
	if err != nil {
		return nil, err
	}
	lats, err := s.convertColumn(table, latCol, req.Latitude, req.Strict)
	if err != nil {
		return nil, err
	}

	result := &ConvertResult{
		OutputPath:      req.OutputPath,
		InputColumns:    inputColumns,
		Table:           table,
		LongitudeColumn: lonOut,
		LatitudeColumn:  latOut,
	}
	lonValues := make([]any, len(lons))
	latValues := make([]any, len(lats))
	for i := range lons {
		lonValues[i], latValues[i] = lons[i].Value(), lats[i].Value()
		if lons[i].Valid && lats[i].Valid {
			result.Points = append(result.Points, models.Point{
				Row:       i + 2,
				Longitude: lons[i].Degrees,
				Latitude:  lats[i].Degrees,
			})
		}
	}
	if err := table.SetColumn(result.LongitudeColumn, lonValues); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := table.SetColumn(result.LatitudeColumn, latValues); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := s.store.Save(req.OutputPath, table); err != nil {
		return nil, fmt.Errorf("service: failed to save table: %w", err)
	}
	s.log.Info().Str("output", req.OutputPath).Int("rows", len(table.Rows)).Int("points", len(result.Points)).Msg("conversion written")

	return result, nil
}

func (s *ConvertService) convertColumn(table *models.Table, col int, c Column, strict bool) ([]dms.Decimal, error) {
	parse := dms.Parse
	if strict {
		parse = dms.ParseStrict
	}

	out := make([]dms.Decimal, len(table.Rows))
	for r := range table.Rows {
		var err error
		switch v := table.Cell(r, col).(type) {
		case nil:
		case string:
			out[r], err = parse(v, c.Hemisphere)
		default:
			err = fmt.Errorf("%w: cell holds %T %v, not text", dms.ErrFormat, v, v)
		}
		if err != nil {
			return nil, &CellError{Row: r + 2, Column: c.Name, Err: err}
		}
	}
	return out, nil
}
