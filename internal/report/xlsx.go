package report

import (
	"io"
	"math"
	"os"
	"unicode/utf8"

	"github.com/alexiusacademia/gosect/internal/calc"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the worksheet holding the results table.
const SummarySheet = "Summary"

// WriteXLSX writes the results table as a spreadsheet: a styled header row
// of column keys, then one row per result.
func WriteXLSX(w io.Writer, results []*calc.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "999999", Style: 1},
			{Type: "right", Color: "999999", Style: 1},
			{Type: "top", Color: "999999", Style: 1},
			{Type: "bottom", Color: "999999", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	cols := Columns(results)
	widths := make([]int, len(cols))
	for i, c := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SummarySheet, cell, c.Key); err != nil {
			return err
		}
		widths[i] = utf8.RuneCountInString(c.Key)
	}
	first, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, first, last, headerStyle); err != nil {
		return err
	}

	for row, r := range results {
		for i, c := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return err
			}
			var v any = c.Text(r)
			if n, ok := c.Value(r); ok {
				v = n
			}
			if err := f.SetCellValue(SummarySheet, cell, v); err != nil {
				return err
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(c.Text(r)))
		}
	}

	for i, n := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := math.Min(math.Max(12, float64(n+2)), 28)
		if err := f.SetColWidth(SummarySheet, name, name, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// SaveXLSX writes the spreadsheet to path, creating its directory.
func SaveXLSX(path string, results []*calc.Result) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteXLSX(out, results); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
