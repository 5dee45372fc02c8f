package spreadsheet

import (
	"errors"
	"fmt"
	"os"

	"dms-converter/internal/models"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// ErrColumnName is returned when a table cannot be mapped to a parquet schema
// because a column name is blank or repeated.
var ErrColumnName = errors.New("spreadsheet: column names must be unique and non-empty")

type columnKind int

const (
	stringColumn columnKind = iota
	doubleColumn
	boolColumn
)

// writeParquet stores every column as an optional leaf. Columns holding only
// numbers become DOUBLE, only booleans BOOLEAN, anything else UTF8 strings.
func writeParquet(path string, table *models.Table) error {
	kinds := make([]columnKind, table.Width())
	group := parquet.Group{}
	for c, name := range table.Columns {
		if _, dup := group[name]; dup || name == "" {
			return fmt.Errorf("%w: %q", ErrColumnName, name)
		}
		kinds[c] = inferKind(table, c)
		switch kinds[c] {
		case doubleColumn:
			group[name] = parquet.Optional(parquet.Leaf(parquet.DoubleType))
		case boolColumn:
			group[name] = parquet.Optional(parquet.Leaf(parquet.BooleanType))
		default:
			group[name] = parquet.Optional(parquet.String())
		}
	}

	name := table.Sheet
	if name == "" {
		name = "table"
	}
	schema := parquet.NewSchema(name, group)

	// Group fields are ordered by name, so leaf indexes differ from table order.
	leaf := make(map[string]int, table.Width())
	for i, p := range schema.Columns() {
		leaf[p[0]] = i
	}

	rows := make([]parquet.Row, len(table.Rows))
	for r := range table.Rows {
		row := make(parquet.Row, table.Width())
		for c, col := range table.Columns {
			idx := leaf[col]
			row[idx] = parquetValue(kinds[c], table.Cell(r, c)).Level(0, definitionLevel(table.Cell(r, c)), idx)
		}
		rows[r] = row
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spreadsheet: error creating Parquet file: %w", err)
	}
	defer file.Close()

	zstdCodec := &zstd.Codec{
		Level:       zstd.SpeedBestCompression,
		Concurrency: 4,
	}

	writer := parquet.NewWriter(file, schema, parquet.Compression(zstdCodec))
	if _, err := writer.WriteRows(rows); err != nil {
		return fmt.Errorf("spreadsheet: error writing data to Parquet file: %w", err)
	}

	// Close flushes buffers and writes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("spreadsheet: error closing Parquet writer: %w", err)
	}
	return file.Close()
}

func inferKind(table *models.Table, col int) columnKind {
	kind, seen := stringColumn, false
	for r := range table.Rows {
		var k columnKind
		switch table.Cell(r, col).(type) {
		case nil:
			continue
		case float64:
			k = doubleColumn
		case bool:
			k = boolColumn
		default:
			return stringColumn
		}
		if seen && k != kind {
			return stringColumn
		}
		kind, seen = k, true
	}
	return kind
}

func parquetValue(kind columnKind, v any) parquet.Value {
	if v == nil {
		return parquet.NullValue()
	}
	switch kind {
	case doubleColumn:
		return parquet.DoubleValue(v.(float64))
	case boolColumn:
		return parquet.BooleanValue(v.(bool))
	default:
		return parquet.ByteArrayValue([]byte(formatCell(v)))
	}
}

func definitionLevel(v any) int {
	if v == nil {
		return 0
	}
	return 1
}
