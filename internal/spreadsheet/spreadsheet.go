// Package spreadsheet loads and saves models.Table values. The file format is
// chosen from the path's extension.
package spreadsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dms-converter/internal/models"
)

// ErrUnsupportedFormat is returned for an extension with no reader or writer.
var ErrUnsupportedFormat = errors.New("spreadsheet: unsupported file format")

// Store implements table persistence on the local filesystem.
type Store struct{}

// NewStore creates a new filesystem store
func NewStore() *Store {
	return &Store{}
}

// Load reads the table at path. sheet selects a worksheet for workbook formats;
// empty means the first one. A missing file yields an error matching
// fs.ErrNotExist.
func (s *Store) Load(path, sheet string) (*models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("spreadsheet: %w", err)
	}

	switch ext(path) {
	case ".xlsx", ".xlsm":
		return readXLSX(path, sheet)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Save writes table to path, replacing any existing file.
func (s *Store) Save(path string, table *models.Table) error {
	switch ext(path) {
	case ".xlsx", ".xlsm":
		return writeXLSX(path, table)
	case ".csv":
		return writeCSV(path, table)
	case ".parquet":
		return writeParquet(path, table)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
