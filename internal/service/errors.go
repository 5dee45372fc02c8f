package service

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"dms-converter/internal/dms"
)

// Kind classifies a pipeline failure so callers can branch without reading
// error messages.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindSchemaMismatch
	KindFormat
	KindUnclassified
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindSchemaMismatch:
		return "schema_mismatch"
	case KindFormat:
		return "format_error"
	default:
		return "unclassified"
	}
}

// ErrNotFound is returned when the input table does not exist.
var ErrNotFound = errors.New("input file not found")

// SchemaError lists required columns that are absent from the input.
type SchemaError struct {
	Missing   []string
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// CellError tags a conversion failure with where it happened. Row is the
// 1-based spreadsheet row, the header being row 1.
type CellError struct {
	Row    int
	Column string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// KindOf reports the kind of err. A nil error is KindNone.
func KindOf(err error) Kind {
	var schemaErr *SchemaError
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.As(err, &schemaErr):
		return KindSchemaMismatch
	case errors.Is(err, dms.ErrFormat):
		return KindFormat
	default:
		return KindUnclassified
	}
}
