package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexiusacademia/gosect/internal/calc"
	"github.com/phpdave11/gofpdf"
)

// WritePDF renders a one-table-per-section summary.
func WritePDF(w io.Writer, title string, results []*calc.Result) error {
	if title == "" {
		title = "Section Properties"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	cols := Columns(results)
	for _, r := range results {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(217, 225, 242)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s  (%s, fy = %.0f MPa)", r.Label, r.Kind, r.Fy)), "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, c := range cols[1:] {
			v, ok := c.Value(r)
			if !ok {
				continue
			}
			pdf.CellFormat(50, 6, tr(c.Label), "LB", 0, "L", false, 0, "")
			pdf.CellFormat(60, 6, num(v), "B", 0, "R", false, 0, "")
			pdf.CellFormat(0, 6, tr(c.Plain), "RB", 1, "L", false, 0, "")
		}
		pdf.Ln(6)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// SavePDF writes the PDF summary to path, creating its directory.
func SavePDF(path, title string, results []*calc.Result) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePDF(out, title, results); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
