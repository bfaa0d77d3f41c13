package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosect/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the UPE channel table and the steel grades",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  UPE channels (EN 10365)")
		fmt.Println("  ─────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "  Name\th (mm)\tb (mm)\ttw (mm)\ttf (mm)\tr (mm)\t")
		for _, p := range catalog.UPEProfiles() {
			fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.1f\t%.1f\t%.0f\t\n", p.Name, p.H, p.B, p.Tw, p.Tf, p.R)
		}
		w.Flush()

		fmt.Println()
		fmt.Println("  Steel grades (EN 10025-2), fy by thickness")
		fmt.Println("  ─────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, g := range catalog.Grades() {
			fmt.Fprintf(w, "  %s\t", g.Name)
			for _, b := range g.Bands {
				fmt.Fprintf(w, "≤%.0f mm: %.0f\t", b.MaxThickness, b.Fy)
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
