package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"dms-converter/internal/models"
)

func readCSV(path string) (*models.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to read record: %w", err)
	}

	table := &models.Table{}
	if len(records) == 0 {
		return table, nil
	}

	table.Columns = records[0]
	for _, record := range records[1:] {
		row := make([]any, len(record))
		for i, v := range record {
			if v != "" {
				row[i] = v
			}
		}
		table.Rows = append(table.Rows, row)
	}
	table.NameExtraColumns()
	return table, nil
}

func writeCSV(path string, table *models.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spreadsheet: error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("spreadsheet: error writing CSV header: %w", err)
	}

	record := make([]string, table.Width())
	for r := range table.Rows {
		for c := range record {
			record[c] = formatCell(table.Cell(r, c))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("spreadsheet: error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("spreadsheet: error flushing CSV: %w", err)
	}
	return file.Close()
}

func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
