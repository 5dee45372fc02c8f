package models

import (
	"fmt"
	"strconv"
)

// Table is an in-memory sheet. The first spreadsheet row becomes Columns; every
// other row is a record. Cell values are string, float64, bool or nil (blank).
// A row may be shorter than Columns when its trailing cells are blank.
type Table struct {
	Sheet   string   `json:"sheet"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row, col, or nil past the end of a short row.
func (t *Table) Cell(row, col int) any {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// AppendColumn adds a column after the existing ones. values must hold exactly
// one entry per row.
func (t *Table) AppendColumn(name string, values []any) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("models: column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}

	t.NameExtraColumns()
	width := len(t.Columns)
	t.Columns = append(t.Columns, name)
	for i, row := range t.Rows {
		for len(row) < width {
			row = append(row, nil)
		}
		t.Rows[i] = append(row, values[i])
	}
	return nil
}

// SetColumn replaces the values of an existing column in place, or appends a
// new column when none has that name.
func (t *Table) SetColumn(name string, values []any) error {
	col := t.ColumnIndex(name)
	if col < 0 {
		return t.AppendColumn(name, values)
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("models: column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}
	for i, row := range t.Rows {
		for len(row) <= col {
			row = append(row, nil)
		}
		row[col] = values[i]
		t.Rows[i] = row
	}
	return nil
}

// NameExtraColumns extends Columns to cover cells that lie past the end of
// the header. Each added column is named "Unnamed: <index>".
func (t *Table) NameExtraColumns() {
	width := len(t.Columns)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i := len(t.Columns); i < width; i++ {
		t.Columns = append(t.Columns, "Unnamed: "+strconv.Itoa(i))
	}
}

// Width is the number of columns.
func (t *Table) Width() int { return len(t.Columns) }
