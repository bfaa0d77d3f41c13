package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	steelFill    = color.RGBA{R: 160, G: 170, B: 185, A: 255}
	centroidBlue = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	pnaRed       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSectionDiagram exports the section outline with its centroid and
// plastic neutral axes to an image file. The format follows the extension
// (png, svg, pdf); anything else is written as png.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p, err := sectionPlot(data)
	if err != nil {
		return err
	}

	size := 7 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(size, size, filename)
	default:
		return p.Save(size, size, filename+".png")
	}
}

func sectionPlot(data SectionDiagramData) (*plot.Plot, error) {
	if len(data.Outlines) == 0 {
		return nil, fmt.Errorf("section %q has nothing to draw", data.Title)
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	for _, loop := range data.Outlines {
		pts := make(plotter.XYs, len(loop))
		for i, v := range loop {
			pts[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		poly.Color = steelFill
		poly.LineStyle.Width = vg.Points(1)
		poly.LineStyle.Color = color.Black
		p.Add(poly)
	}

	// equal scales on both axes, with room for labels
	w := data.MaxX - data.MinX
	h := data.MaxY - data.MinY
	span := math.Max(w, h) * 1.2
	cx := (data.MinX + data.MaxX) / 2
	cy := (data.MinY + data.MaxY) / 2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2

	lines := []struct {
		pts    plotter.XYs
		col    color.Color
		dashes []vg.Length
	}{
		{plotter.XYs{{X: p.X.Min, Y: data.Centroid.Y}, {X: p.X.Max, Y: data.Centroid.Y}}, centroidBlue, []vg.Length{vg.Points(6), vg.Points(3)}},
		{plotter.XYs{{X: p.X.Min, Y: data.PNAX}, {X: p.X.Max, Y: data.PNAX}}, pnaRed, []vg.Length{vg.Points(3), vg.Points(3)}},
		{plotter.XYs{{X: data.PNAY, Y: p.Y.Min}, {X: data.PNAY, Y: p.Y.Max}}, pnaRed, []vg.Length{vg.Points(3), vg.Points(3)}},
	}
	for _, ln := range lines {
		l, err := plotter.NewLine(ln.pts)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(1.2)
		l.LineStyle.Color = ln.col
		l.LineStyle.Dashes = ln.dashes
		p.Add(l)
	}

	centroid, err := plotter.NewScatter(plotter.XYs{{X: data.Centroid.X, Y: data.Centroid.Y}})
	if err != nil {
		return nil, err
	}
	centroid.GlyphStyle.Color = centroidBlue
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: data.MaxX + 0.02*span, Y: data.Centroid.Y},
			{X: data.MaxX + 0.02*span, Y: data.PNAX - 0.04*span},
		},
		Labels: []string{
			fmt.Sprintf("ȳ=%.1f", data.Centroid.Y),
			fmt.Sprintf("y*=%.1f", data.PNAX),
		},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	return p, nil
}
