package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"dms-converter/internal/spreadsheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "1.xlsx")
	out := filepath.Join(dir, "output.csv")
	writeWorkbook(t, in, [][]any{
		{"名称", "经度", "纬度"},
		{"天安门", `116°23'29"`, `39°54'27"`},
	})

	stdout, err := execute(t, "convert", "-i", in, "-o", out)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Columns:\n名称, 经度, 纬度\n")
	assert.Contains(t, stdout, "116.391389")
	assert.Contains(t, stdout, "39.907500")
	assert.Contains(t, stdout, "Converted data saved to "+out)

	table, err := spreadsheet.NewStore().Load(out, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"名称", "经度", "纬度", "经度_decimal", "纬度_decimal"}, table.Columns)
}

func TestConvertCommand_Failures(t *testing.T) {
	dir := t.TempDir()
	noLat := filepath.Join(dir, "nolat.xlsx")
	writeWorkbook(t, noLat, [][]any{{"经度"}, {`116°23'29"`}})
	bad := filepath.Join(dir, "bad.xlsx")
	writeWorkbook(t, bad, [][]any{{"经度", "纬度"}, {`116°23'29"`, `39 54 27`}})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "missing file", input: filepath.Join(dir, "absent.xlsx"), expected: "not found, check that the path is correct"},
		{name: "missing column", input: noLat, expected: `Column(s) "纬度" not found`},
		{name: "bad cell", input: bad, expected: `row 2, column "纬度"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "output.xlsx")

			stdout, err := execute(t, "convert", "-i", tt.input, "-o", out)
			require.Error(t, err)
			var reported *reportedError
			assert.ErrorAs(t, err, &reported)
			assert.Contains(t, stdout, tt.expected)
			assert.NoFileExists(t, out)
		})
	}
}

func TestParseCommand(t *testing.T) {
	stdout, err := execute(t, "parse", `10°30'0"`, "--hemisphere", "W")
	require.NoError(t, err)
	assert.Equal(t, "-10.500000\n", stdout)

	stdout, err = execute(t, "parse", "  ")
	require.NoError(t, err)
	assert.Equal(t, "no value\n", stdout)

	_, err = execute(t, "parse", "123 45 6")
	assert.Error(t, err)
}
