package spreadsheet

import (
	"fmt"
	"strconv"

	"dms-converter/internal/models"

	"github.com/xuri/excelize/v2"
)

func readXLSX(path, sheet string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("spreadsheet: workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to read sheet %q: %w", sheet, err)
	}

	table := &models.Table{Sheet: sheet}
	if len(rows) == 0 {
		return table, nil
	}

	table.Columns = append([]string(nil), rows[0]...)
	for r, raw := range rows[1:] {
		row := make([]any, len(raw))
		for c, v := range raw {
			if v == "" {
				continue
			}
			// +2: one for the header row, one for 1-based rows
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("spreadsheet: %w", err)
			}
			typ, err := f.GetCellType(sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("spreadsheet: failed to read type of %s: %w", cell, err)
			}
			row[c] = typedValue(typ, v)
		}
		table.Rows = append(table.Rows, row)
	}
	table.NameExtraColumns()

	return table, nil
}

// typedValue converts a raw cell value according to its stored type. Cells
// without an explicit type are numbers when they parse as one.
func typedValue(typ excelize.CellType, raw string) any {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true"
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

func writeXLSX(path string, table *models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if table.Sheet != "" && table.Sheet != sheet {
		if err := f.SetSheetName(sheet, table.Sheet); err != nil {
			return fmt.Errorf("spreadsheet: failed to name sheet %q: %w", table.Sheet, err)
		}
		sheet = table.Sheet
	}

	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("spreadsheet: failed to write header: %w", err)
	}

	for r, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("spreadsheet: %w", err)
		}
		values := append([]any(nil), row...)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("spreadsheet: failed to write row %d: %w", r+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("spreadsheet: failed to save workbook: %w", err)
	}
	return nil
}
