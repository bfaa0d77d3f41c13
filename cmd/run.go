package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosect/internal/calc"
	"github.com/alexiusacademia/gosect/internal/config"
	"github.com/alexiusacademia/gosect/internal/report"
	"github.com/spf13/cobra"
)

var jobFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Calculate several sections from a JSON job file",
	Long: `Calculate a batch of sections and print a comparison table.

Without --file the built-in demonstration set is used: a built-up I,
a CHS with channels left and right and a CHS with channels top and
bottom, all in S355.

Job file format:
  {
    "name": "Crane girder options",
    "sections": [
      {"type": "BUILTUP_I", "fy": 355, "b_top": 300, "t_top": 20,
       "b_bot": 100, "t_bot": 20, "tw": 10, "h": 800},
      {"type": "CHS_UPE_LR", "fy": 355, "d": 323, "t": 12,
       "channel": "UPE300", "gap_back": 28.9}
    ]
  }

Examples:
  gosect run
  gosect run -f girders.json --csv girders.csv --xlsx girders.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&jobFile, "file", "f", "", "JSON job file")
	runCmd.Flags().StringVar(&exportCSV, "csv", "", "Export results to a CSV file")
	runCmd.Flags().StringVar(&exportXLSX, "xlsx", "", "Export results to an Excel workbook")
	runCmd.Flags().StringVar(&exportPDF, "pdf", "", "Export a PDF summary")
}

// demoJobs is the reference set of the three composite section types.
func demoJobs() *config.JobFile {
	return &config.JobFile{
		Name: "Demonstration sections",
		Sections: []calc.Job{
			{Kind: calc.BuiltUpI, Input: calc.Input{
				Label: "Built-up I 800", Fy: 355,
				BTop: 300, TTop: 20, BBot: 100, TBot: 20, Tw: 10, H: 800,
			}},
			{Kind: calc.CHSUPELR, Input: calc.Input{
				Label: "CHS 323x12 + 2 UPE300 L-R", Fy: 355,
				D: 323, T: 12, Channel: "UPE300", GapBack: 28.9,
			}},
			{Kind: calc.CHSUPETB, Input: calc.Input{
				Label: "CHS 323x12 + 2 UPE300 T-B", Fy: 355,
				D: 323, T: 12, Channel: "UPE300", YC: 190.4,
			}},
		},
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	jf := demoJobs()
	if jobFile != "" {
		var err error
		if jf, err = config.LoadJobs(jobFile); err != nil {
			return fmt.Errorf("loading job file: %w", err)
		}
	}
	title := jf.Name
	if title == "" {
		title = "Section properties"
	}

	results, err := calc.CalculateAll(jf.Sections)
	if err != nil {
		return err
	}

	for _, r := range results {
		report.Print(os.Stdout, r, settings.Verbose)
	}
	fmt.Println()
	fmt.Println("  " + title)
	report.PrintSummary(os.Stdout, results)

	return exportResults(title, results)
}
