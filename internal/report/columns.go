package report

import (
	"strconv"

	"github.com/alexiusacademia/gosect/internal/calc"
)

// Column is one exported quantity of a result.
type Column struct {
	Key   string // CSV / spreadsheet header
	Label string // console label
	Unit  string
	Plain string // unit spelled without superscripts, for PDF core fonts

	value    func(r *calc.Result) float64
	text     func(r *calc.Result) string
	optional bool // dropped when no result carries it
}

// Text formats the column value of r. Optional columns a result does not
// carry are empty.
func (c Column) Text(r *calc.Result) string {
	if c.text != nil {
		return c.text(r)
	}
	v := c.value(r)
	if c.optional && v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Value returns the numeric value and whether the column has one.
func (c Column) Value(r *calc.Result) (float64, bool) {
	if c.value == nil {
		return 0, false
	}
	v := c.value(r)
	if c.optional && v == 0 {
		return 0, false
	}
	return v, true
}

var allColumns = []Column{
	{Key: "section", Label: "Section", text: func(r *calc.Result) string { return r.Label }},
	{Key: "A_mm2", Label: "Area", Unit: "mm²", Plain: "mm2", value: func(r *calc.Result) float64 { return r.Area }},
	{Key: "Ix_mm4", Label: "Ix", Unit: "mm⁴", Plain: "mm4", value: func(r *calc.Result) float64 { return r.Ix }},
	{Key: "Iy_mm4", Label: "Iy", Unit: "mm⁴", Plain: "mm4", value: func(r *calc.Result) float64 { return r.Iy }},
	{Key: "We_x_mm3", Label: "We_x", Unit: "mm³", Plain: "mm3", value: func(r *calc.Result) float64 { return r.X.We }},
	{Key: "Wp_x_mm3", Label: "Wp_x", Unit: "mm³", Plain: "mm3", value: func(r *calc.Result) float64 { return r.X.Wp }},
	{Key: "Me_x_kNm", Label: "Me_x", Unit: "kN·m", Plain: "kNm", value: func(r *calc.Result) float64 { return r.X.Me }},
	{Key: "Mp_x_kNm", Label: "Mp_x", Unit: "kN·m", Plain: "kNm", value: func(r *calc.Result) float64 { return r.X.Mp }},
	{Key: "shape_x", Label: "shape_x", Unit: "—", Plain: "-", value: func(r *calc.Result) float64 { return r.X.ShapeFactor }},
	{Key: "We_y_mm3", Label: "We_y", Unit: "mm³", Plain: "mm3", value: func(r *calc.Result) float64 { return r.Y.We }},
	{Key: "Wp_y_mm3", Label: "Wp_y", Unit: "mm³", Plain: "mm3", value: func(r *calc.Result) float64 { return r.Y.Wp }},
	{Key: "Me_y_kNm", Label: "Me_y", Unit: "kN·m", Plain: "kNm", value: func(r *calc.Result) float64 { return r.Y.Me }},
	{Key: "Mp_y_kNm", Label: "Mp_y", Unit: "kN·m", Plain: "kNm", value: func(r *calc.Result) float64 { return r.Y.Mp }},
	{Key: "shape_y", Label: "shape_y", Unit: "—", Plain: "-", value: func(r *calc.Result) float64 { return r.Y.ShapeFactor }},
	{Key: "y_pna_mm", Label: "y* (PNA x)", Unit: "mm", Plain: "mm", value: func(r *calc.Result) float64 { return r.X.PNA }},
	{Key: "x_c_mm", Label: "x_c", Unit: "mm", Plain: "mm", optional: true, value: func(r *calc.Result) float64 { return r.XC }},
	{Key: "y_c_mm", Label: "y_c", Unit: "mm", Plain: "mm", optional: true, value: func(r *calc.Result) float64 { return r.YC }},
}

// Columns returns the columns to export for results: every fixed column,
// plus the optional ones at least one result carries.
func Columns(results []*calc.Result) []Column {
	var cols []Column
	for _, c := range allColumns {
		if !c.optional {
			cols = append(cols, c)
			continue
		}
		for _, r := range results {
			if _, ok := c.Value(r); ok {
				cols = append(cols, c)
				break
			}
		}
	}
	return cols
}
