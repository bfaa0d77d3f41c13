package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosect/internal/calc"
	"github.com/alexiusacademia/gosect/internal/catalog"
	"github.com/alexiusacademia/gosect/internal/diagram"
	"github.com/alexiusacademia/gosect/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Export options shared by the section commands
	exportCSV   string
	exportXLSX  string
	exportPDF   string
	exportPlot  string
	showDiagram bool

	// Material
	sectionFy    float64
	sectionGrade string
	sectionLabel string
)

func addMaterialFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sectionFy, "fy", 0, "Yield strength (MPa); overrides --grade")
	cmd.Flags().StringVar(&sectionGrade, "grade", "", "Steel grade S235/S275/S355/S460 (default S355, env GOSECT_GRADE)")
	cmd.Flags().StringVar(&sectionLabel, "label", "", "Section label used in reports")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&exportCSV, "csv", "", "Export results to a CSV file")
	cmd.Flags().StringVar(&exportXLSX, "xlsx", "", "Export results to an Excel workbook")
	cmd.Flags().StringVar(&exportPDF, "pdf", "", "Export a PDF summary")
	cmd.Flags().StringVar(&exportPlot, "plot", "", "Export section drawing (png, svg, pdf)")
	cmd.Flags().BoolVar(&showDiagram, "diagram", false, "Show ASCII section drawing")
}

// resolveFy returns fy from --fy, or from the grade and the thickest plate.
func resolveFy(kind calc.Kind, in calc.Input) (float64, error) {
	if sectionFy != 0 {
		return sectionFy, nil
	}
	name := sectionGrade
	if name == "" {
		name = settings.Grade
	}
	if name == "" {
		name = "S355"
	}
	g, err := catalog.ParseGrade(name)
	if err != nil {
		return 0, err
	}
	t, err := in.GoverningThickness(kind)
	if err != nil {
		return 0, err
	}
	fy, err := g.Yield(t)
	if err != nil {
		return 0, err
	}
	if settings.Verbose {
		fmt.Printf("  • %s, governing thickness %.1f mm → fy = %.0f MPa\n", g.Name, t, fy)
	}
	return fy, nil
}

// runSingle computes one section from command flags and reports it.
func runSingle(kind calc.Kind, in calc.Input) error {
	fy, err := resolveFy(kind, in)
	if err != nil {
		return fmt.Errorf("material: %w", err)
	}
	in.Fy = fy
	in.Label = sectionLabel

	result, err := calc.Calculate(kind, in)
	if err != nil {
		return fmt.Errorf("calculating section: %w", err)
	}
	report.Print(os.Stdout, result, settings.Verbose)

	if showDiagram || exportPlot != "" {
		if err := drawSection(kind, in, exportPlot); err != nil {
			return err
		}
	}
	return exportResults(result.Label, []*calc.Result{result})
}

func drawSection(kind calc.Kind, in calc.Input, plotFile string) error {
	s, err := calc.Build(kind, in)
	if err != nil {
		return err
	}
	data, err := diagram.FromSection(s)
	if err != nil {
		return fmt.Errorf("drawing section: %w", err)
	}
	if showDiagram {
		fmt.Println(diagram.DrawASCIISection(data, 48))
	}
	if plotFile != "" {
		path := outputPath(plotFile)
		if err := diagram.ExportSectionDiagram(data, path); err != nil {
			return fmt.Errorf("exporting drawing: %w", err)
		}
		fmt.Printf("Drawing exported to: %s\n", path)
	}
	return nil
}

// exportResults writes every requested file and lists them in a box.
func exportResults(title string, results []*calc.Result) error {
	var saved []string

	if exportCSV != "" {
		path := outputPath(exportCSV)
		if err := report.SaveCSV(path, results); err != nil {
			return fmt.Errorf("saving CSV: %w", err)
		}
		saved = append(saved, "CSV   → "+path)
	}
	if exportXLSX != "" {
		path := outputPath(exportXLSX)
		if err := report.SaveXLSX(path, results); err != nil {
			return fmt.Errorf("saving Excel: %w", err)
		}
		saved = append(saved, "Excel → "+path)
	}
	if exportPDF != "" {
		path := outputPath(exportPDF)
		if err := report.SavePDF(path, title, results); err != nil {
			return fmt.Errorf("saving PDF: %w", err)
		}
		saved = append(saved, "PDF   → "+path)
	}

	if len(saved) > 0 {
		fmt.Print(diagram.DrawSummaryBox("Saved files", saved))
	}
	return nil
}

// outputPath places relative paths under the configured output directory.
func outputPath(p string) string {
	if settings.OutputDir == "" || filepath.IsAbs(p) || strings.HasPrefix(p, "."+string(filepath.Separator)) {
		return p
	}
	return filepath.Join(settings.OutputDir, p)
}
