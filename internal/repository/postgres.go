package repository

import (
	"context"
	"errors"
	"fmt"

	"dms-converter/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS converted_points (
		id BIGSERIAL PRIMARY KEY,
		source TEXT NOT NULL,
		source_row INTEGER NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS converted_points_geom_idx ON converted_points USING GIST (geom);
	CREATE INDEX IF NOT EXISTS converted_points_source_idx ON converted_points (source);
`

// Repository stores converted coordinates in PostgreSQL/PostGIS
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the converted_points table if it does not exist
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ReplacePoints swaps the stored points for source with points, returning the
// number of rows copied. Everything runs in one transaction; a failure leaves
// the previous import in place.
func (r *Repository) ReplacePoints(ctx context.Context, source string, points []models.Point) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM converted_points WHERE source = $1`, source); err != nil {
		return 0, fmt.Errorf("repository: failed to delete points: %w", err)
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"converted_points"},
		[]string{"source", "source_row", "longitude", "latitude"},
		pgx.CopyFromSlice(len(points), func(i int) ([]any, error) {
			p := points[i]
			return []any{source, int32(p.Row), p.Longitude, p.Latitude}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy points: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE converted_points
		SET geom = ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
		WHERE source = $1 AND geom IS NULL
	`, source)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to set geometry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit points: %w", err)
	}
	return n, nil
}

// CountPoints returns how many points are stored for source
func (r *Repository) CountPoints(ctx context.Context, source string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM converted_points WHERE source = $1`, source).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to count points: %w", err)
	}
	return count, nil
}

// ListPoints returns the points stored for source ordered by spreadsheet row,
// reading coordinates back out of the geometry column
func (r *Repository) ListPoints(ctx context.Context, source string) ([]models.Point, error) {
	sql := `
		SELECT
			source,
			source_row,
			ST_X(geom::geometry) as longitude,
			ST_Y(geom::geometry) as latitude
		FROM converted_points
		WHERE source = $1
		ORDER BY source_row
	`

	rows, err := r.db.Query(ctx, sql, source)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	points := []models.Point{}
	for rows.Next() {
		var p models.Point
		if err := rows.Scan(&p.Source, &p.Row, &p.Longitude, &p.Latitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan point: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return points, nil
}

// FindNearestPoint performs a spatial query to find the stored point nearest to the given coordinates.
// It returns nil when nothing lies within maxMeters.
func (r *Repository) FindNearestPoint(ctx context.Context, lat, lon, maxMeters float64) (*models.Point, error) {
	sql := `
		SELECT
			source,
			source_row,
			ST_X(geom::geometry) as longitude,
			ST_Y(geom::geometry) as latitude
		FROM converted_points
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var p models.Point
	err := r.db.QueryRow(ctx, sql, lat, lon, maxMeters).Scan(&p.Source, &p.Row, &p.Longitude, &p.Latitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &p, nil
}
