package calc

import (
	"fmt"

	"github.com/alexiusacademia/gosect/internal/shape"
)

// AxisResult holds the bending properties about one axis.
type AxisResult struct {
	We          float64 `json:"we_mm3"` // elastic modulus, governing fiber
	Wp          float64 `json:"wp_mm3"` // plastic modulus
	Me          float64 `json:"me_knm"` // elastic resisting moment fy·We
	Mp          float64 `json:"mp_knm"` // plastic resisting moment fy·Wp
	ShapeFactor float64 `json:"shape"`  // Wp/We
	PNA         float64 `json:"pna_mm"` // plastic neutral axis ordinate
}

// Result is the finished record for one section. It is produced once and
// read by the reporters; nothing mutates it afterwards.
type Result struct {
	Label    string      `json:"section"`
	Kind     Kind        `json:"type"`
	Fy       float64     `json:"fy_mpa"`
	Area     float64     `json:"a_mm2"`
	Centroid shape.Point `json:"centroid"`
	Ix       float64     `json:"ix_mm4"`
	Iy       float64     `json:"iy_mm4"`
	Width    float64     `json:"width_mm"`
	Depth    float64     `json:"depth_mm"`

	X AxisResult `json:"x"`
	Y AxisResult `json:"y"`

	// Channel centroid offsets for the CHS+UPE arrangements
	XC float64 `json:"x_c_mm,omitempty"`
	YC float64 `json:"y_c_mm,omitempty"`

	Notes []string `json:"-"`

	bottom float64
}

// CentroidFromBottom is ȳ measured from the lowest fiber.
func (r *Result) CentroidFromBottom() float64 {
	return r.Centroid.Y - r.bottom
}

func explain(kind Kind, r *Result, p placement, parts int) []string {
	var notes []string
	switch kind {
	case BuiltUpI:
		notes = append(notes,
			"Built-up I: bottom flange, web and top flange stacked from the bottom fiber.",
			fmt.Sprintf("Centroid ȳ = %.2f mm above the bottom fiber; the section is not symmetric about x.", r.CentroidFromBottom()))
	case CHS:
		notes = append(notes, "CHS: centroid at the tube centre; Ix = Iy = π/64·(D⁴ − d⁴).")
	case CHSUPELR:
		notes = append(notes,
			fmt.Sprintf("Channels upright, backs to the tube, centroids at x = ±%.2f mm (R + gap_back/2 + e, e = %.2f mm).", p.xc, p.e),
			"Symmetric about both axes: centroid at the tube centre; Steiner A·x_c² enters Iy only.")
	case CHSUPETB:
		notes = append(notes,
			fmt.Sprintf("Channels turned flat, backs to the tube, centroids at y = ±%.2f mm (clearance %.2f mm, e = %.2f mm).", p.yc, p.gap, p.e),
			"Symmetric about both axes: centroid at the tube centre; Steiner A·y_c² enters Ix only.")
	}
	notes = append(notes,
		fmt.Sprintf("Ix, Iy combined over %d parts with the parallel-axis theorem about the section centroid.", parts),
		fmt.Sprintf("Plastic neutral axis (x) at y* = %.2f mm splits A/2 = %.1f mm² above and below.", r.X.PNA, r.Area/2),
		fmt.Sprintf("Elastic moduli use the farther extreme fiber; shape factors %.3f (x), %.3f (y).", r.X.ShapeFactor, r.Y.ShapeFactor))
	return notes
}
