// Package report renders the converter's console output.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dms-converter/internal/models"
	"dms-converter/internal/service"

	"github.com/olekukonko/tablewriter"
)

// Printer writes human-readable run output.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Columns lists the column names of a loaded table.
func (p *Printer) Columns(columns []string) {
	fmt.Fprintln(p.w, "Columns:")
	fmt.Fprintln(p.w, strings.Join(columns, ", "))
}

// Preview renders up to limit rows of the original and derived columns.
func (p *Printer) Preview(result *service.ConvertResult, lonName, latName string, limit int) {
	table := result.Table
	names := []string{lonName, result.LongitudeColumn, latName, result.LatitudeColumn}
	cols := make([]int, len(names))
	for i, n := range names {
		cols[i] = table.ColumnIndex(n)
	}

	tw := tablewriter.NewWriter(p.w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(names)
	for r := range table.Rows {
		if limit > 0 && r >= limit {
			break
		}
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = cellText(table, r, c)
		}
		tw.Append(row)
	}

	fmt.Fprintln(p.w, "Converted data:")
	tw.Render()
	if limit > 0 && len(table.Rows) > limit {
		fmt.Fprintf(p.w, "... %d more row(s)\n", len(table.Rows)-limit)
	}
}

// Success confirms where the output went.
func (p *Printer) Success(path string) {
	fmt.Fprintf(p.w, "Converted data saved to %s\n", path)
}

// Failure describes err according to its kind.
func (p *Printer) Failure(inputPath string, err error) {
	switch service.KindOf(err) {
	case service.KindNotFound:
		fmt.Fprintf(p.w, "File %s not found, check that the path is correct.\n", inputPath)
	case service.KindSchemaMismatch:
		var schemaErr *service.SchemaError
		errors.As(err, &schemaErr)
		fmt.Fprintf(p.w, "Column(s) %s not found, check the column names. Available: %s\n",
			quoteAll(schemaErr.Missing), strings.Join(schemaErr.Available, ", "))
	case service.KindFormat:
		fmt.Fprintf(p.w, "Invalid coordinate, nothing was written: %v\n", err)
	default:
		fmt.Fprintf(p.w, "An error occurred: %v\n", err)
	}
}

func cellText(table *models.Table, row, col int) string {
	if col < 0 {
		return ""
	}
	switch v := table.Cell(row, col).(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', 6, 64)
	default:
		return fmt.Sprint(v)
	}
}

func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = strconv.Quote(n)
	}
	return strings.Join(q, ", ")
}
