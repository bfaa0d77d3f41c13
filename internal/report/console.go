package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosect/internal/calc"
)

const rule = "───────────────────────────────────────────────────────────────"

// Print writes the console summary of one section.
func Print(w io.Writer, r *calc.Result, verbose bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     SECTION PROPERTIES - %s\n", strings.ToUpper(r.Label))
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "GEOMETRY:")
	fmt.Fprintln(w, rule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Type:\t%s\n", r.Kind)
	fmt.Fprintf(tw, "  Overall width × depth:\t%.1f × %.1f mm\n", r.Width, r.Depth)
	fmt.Fprintf(tw, "  Area:\t%s mm²\n", num(r.Area))
	fmt.Fprintf(tw, "  Centroid ȳ (from bottom):\t%.2f mm\n", r.CentroidFromBottom())
	if r.XC != 0 {
		fmt.Fprintf(tw, "  Channel offset x_c:\t±%.2f mm\n", r.XC)
	}
	if r.YC != 0 {
		fmt.Fprintf(tw, "  Channel offset y_c:\t±%.2f mm\n", r.YC)
	}
	fmt.Fprintf(tw, "  Ix:\t%s mm⁴\n", num(r.Ix))
	fmt.Fprintf(tw, "  Iy:\t%s mm⁴\n", num(r.Iy))
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "BENDING CAPACITY (fy = %.0f MPa):\n", r.Fy)
	fmt.Fprintln(w, rule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  \tx-axis\ty-axis\t\n")
	fmt.Fprintf(tw, "  \t──────\t──────\t\n")
	fmt.Fprintf(tw, "  We (mm³)\t%s\t%s\t\n", num(r.X.We), num(r.Y.We))
	fmt.Fprintf(tw, "  Wp (mm³)\t%s\t%s\t\n", num(r.X.Wp), num(r.Y.Wp))
	fmt.Fprintf(tw, "  Me (kN·m)\t%s\t%s\t\n", num(r.X.Me), num(r.Y.Me))
	fmt.Fprintf(tw, "  Mp (kN·m)\t%s\t%s\t\n", num(r.X.Mp), num(r.Y.Mp))
	fmt.Fprintf(tw, "  Shape factor\t%.4f\t%.4f\t\n", r.X.ShapeFactor, r.Y.ShapeFactor)
	fmt.Fprintf(tw, "  Plastic N.A. (mm)\t%.2f\t%.2f\t\n", r.X.PNA, r.Y.PNA)
	tw.Flush()
	fmt.Fprintln(w)

	if verbose && len(r.Notes) > 0 {
		fmt.Fprintln(w, "NOTES:")
		fmt.Fprintln(w, rule)
		for _, n := range r.Notes {
			fmt.Fprintf(w, "  • %s\n", n)
		}
		fmt.Fprintln(w)
	}
}

// PrintSummary writes one line per section for a batch.
func PrintSummary(w io.Writer, results []*calc.Result) {
	fmt.Fprintln(w, "SUMMARY:")
	fmt.Fprintln(w, rule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Section\tA (mm²)\tWe_x (mm³)\tWp_x (mm³)\tMe_x (kN·m)\tMp_x (kN·m)\tshape_x\t\n")
	fmt.Fprintf(tw, "  ───────\t───────\t──────────\t──────────\t───────────\t───────────\t───────\t\n")
	for _, r := range results {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%.2f\t%.2f\t%.3f\t\n",
			r.Label, num(r.Area), num(r.X.We), num(r.X.Wp), r.X.Me, r.X.Mp, r.X.ShapeFactor)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// num formats with six significant digits.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
