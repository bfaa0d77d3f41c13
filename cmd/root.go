package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosect/internal/config"
	"github.com/alexiusacademia/gosect/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile   string
	outputDir string
	verbose   bool

	// settings is filled from the environment before any command runs
	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "gosect",
	Short: "Steel Cross-Section Property Calculator",
	Long: `gosect - Go Steel Section Properties

A CLI tool computing elastic and plastic properties of composite
structural steel cross-sections built from plates, tubes and channels.

For each section it reports:
  - Area, centroid and second moments Ix, Iy (parallel-axis theorem)
  - Elastic and plastic section moduli We, Wp
  - Elastic and plastic resisting moments Me = fy·We, Mp = fy·Wp
  - Shape factor Wp/We and the plastic neutral axis

Results can be exported to CSV, Excel, PDF and section drawings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		s, err := config.Load(files...)
		if err != nil {
			return err
		}
		if outputDir != "" {
			s.OutputDir = outputDir
		}
		if verbose {
			s.Verbose = true
		}
		settings = s
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosect v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Steel Section Properties                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Elastic and plastic properties of composite steel sections.")
		fmt.Println()
		fmt.Println("  Sections:")
		fmt.Println("    • builtup     Built-up I with unequal flanges")
		fmt.Println("    • chs         Circular hollow section")
		fmt.Println("    • chs-upe-lr  CHS with two UPE channels left and right")
		fmt.Println("    • chs-upe-tb  CHS with two UPE channels top and bottom")
		fmt.Println("    • run         Several sections from a JSON job file")
		fmt.Println()
		fmt.Println("  Use 'gosect --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Settings file to load (default .env)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Directory for exported files (env "+config.EnvOutputDir+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Explain the calculation steps")
}
