package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosect/internal/section"
	"github.com/alexiusacademia/gosect/internal/shape"
)

// SectionDiagramData holds what is needed to draw a cross-section
type SectionDiagramData struct {
	Title string

	// Bounding box in the section frame (mm)
	MinX, MaxX float64
	MinY, MaxY float64

	// Closed loops of every part, section frame
	Outlines [][]shape.Point

	// Material test used by the ASCII raster
	Contains func(p shape.Point) bool

	// Elastic centroid and plastic neutral axes
	Centroid shape.Point
	PNAX     float64 // y* for bending about x
	PNAY     float64 // x* for bending about y
}

// FromSection collects the drawing data of a section. It finalizes the
// section.
func FromSection(s *section.Section) (SectionDiagramData, error) {
	d := SectionDiagramData{
		Title:    s.Name,
		Centroid: s.Centroid(),
		Contains: s.Contains,
	}
	d.MinX, d.MaxX = s.Extent(shape.AxisY)
	d.MinY, d.MaxY = s.Extent(shape.AxisX)

	var err error
	if d.PNAX, err = s.PlasticNeutralAxis(shape.AxisX); err != nil {
		return d, err
	}
	if d.PNAY, err = s.PlasticNeutralAxis(shape.AxisY); err != nil {
		return d, err
	}

	for _, p := range s.Parts() {
		for _, loop := range p.Shape.Outline() {
			moved := make([]shape.Point, len(loop))
			for i, v := range loop {
				moved[i] = shape.Point{X: v.X + p.At.X, Y: v.Y + p.At.Y}
			}
			d.Outlines = append(d.Outlines, moved)
		}
	}
	return d, nil
}

// DrawASCIISection rasterizes the section into a character grid with the
// centroid and plastic neutral axis marked on the right.
func DrawASCIISection(data SectionDiagramData, widthChars int) string {
	var sb strings.Builder

	if widthChars < 10 {
		widthChars = 10
	}
	w := data.MaxX - data.MinX
	h := data.MaxY - data.MinY
	if w <= 0 || h <= 0 || data.Contains == nil {
		return ""
	}

	// terminal cells are roughly twice as tall as they are wide
	cell := w / float64(widthChars)
	heightChars := int(math.Ceil(h / (2 * cell)))
	if heightChars < 3 {
		heightChars = 3
	}
	dy := h / float64(heightChars)

	rowOf := func(y float64) int {
		r := int((data.MaxY - y) / dy)
		return min(max(r, 0), heightChars-1)
	}
	centroidRow := rowOf(data.Centroid.Y)
	pnaRow := rowOf(data.PNAX)

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CROSS-SECTION  %.0f × %.0f mm\n", w, h))
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")

	for row := 0; row < heightChars; row++ {
		y := data.MaxY - (float64(row)+0.5)*dy
		var line strings.Builder
		for col := 0; col < widthChars; col++ {
			x := data.MinX + (float64(col)+0.5)*cell
			if data.Contains(shape.Point{X: x, Y: y}) {
				line.WriteString("█")
			} else {
				line.WriteString(" ")
			}
		}

		sb.WriteString("  │" + line.String() + "│")
		switch {
		case row == centroidRow && row == pnaRow:
			sb.WriteString(" ◄─ ȳ, y*")
		case row == centroidRow:
			sb.WriteString(" ◄─ ȳ (elastic)")
		case row == pnaRow:
			sb.WriteString(" ◄─ y* (plastic)")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Steel\n")
	sb.WriteString(fmt.Sprintf("  ȳ  = Elastic centroid at y = %.1f mm\n", data.Centroid.Y))
	sb.WriteString(fmt.Sprintf("  y* = Plastic neutral axis at y = %.1f mm\n", data.PNAX))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	if len(lines) > 0 {
		sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	}
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes.
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
