package section

import (
	"sort"

	"github.com/alexiusacademia/gosect/internal/shape"
)

// finalize computes and freezes the elastic properties. It runs once.
func (s *Section) finalize() {
	if s.frozen {
		return
	}
	s.frozen = true

	var sumX, sumY float64
	for _, p := range s.parts {
		a := p.Shape.Area()
		s.area += a
		sumX += a * p.At.X
		sumY += a * p.At.Y
	}
	if s.area > 0 {
		s.centroid = shape.Point{X: sumX / s.area, Y: sumY / s.area}
	}

	// Steiner: each part's own centroidal moment plus A·d² to the section
	// centroid.
	for _, axis := range []shape.Axis{shape.AxisX, shape.AxisY} {
		c := s.centroid.Along(axis)
		var i float64
		for _, p := range s.parts {
			d := p.At.Along(axis) - c
			i += p.Shape.SecondMoment(axis) + p.Shape.Area()*d*d
		}
		s.inertia[axis] = i
	}
}

// Area returns the total area (mm²).
func (s *Section) Area() float64 {
	s.finalize()
	return s.area
}

// Centroid returns the area-weighted centroid in the section frame.
func (s *Section) Centroid() shape.Point {
	s.finalize()
	return s.centroid
}

// SecondMoment returns the second moment of area about the centroidal axis
// parallel to axis (mm⁴).
func (s *Section) SecondMoment(axis shape.Axis) float64 {
	s.finalize()
	return s.inertia[axis]
}

// Extent returns the overall span of the section across axis.
func (s *Section) Extent(axis shape.Axis) (lo, hi float64) {
	s.finalize()
	for i, p := range s.parts {
		l, h := p.Shape.Extent(axis)
		off := p.At.Along(axis)
		if i == 0 || l+off < lo {
			lo = l + off
		}
		if i == 0 || h+off > hi {
			hi = h + off
		}
	}
	return lo, hi
}

// AreaAbove returns the area of the section lying beyond cut.
func (s *Section) AreaAbove(axis shape.Axis, cut float64) float64 {
	s.finalize()
	var a float64
	for _, p := range s.parts {
		a += p.Shape.AreaAbove(axis, cut-p.At.Along(axis))
	}
	return a
}

// Contains reports whether pt lies in any part.
func (s *Section) Contains(pt shape.Point) bool {
	for _, p := range s.parts {
		if p.Shape.Contains(shape.Point{X: pt.X - p.At.X, Y: pt.Y - p.At.Y}) {
			return true
		}
	}
	return false
}

// momentAbout returns the first moments of area beyond and short of cut,
// both taken about the cut line and both non-negative.
func (s *Section) momentAbout(axis shape.Axis, cut float64) (above, below float64) {
	for _, p := range s.parts {
		local := cut - p.At.Along(axis)
		q := p.Shape.MomentAbove(axis, local)
		above += q
		// whole-part moment about the cut is A·(0 − local); the part below
		// supplies the remainder with opposite sign.
		below += q + p.Shape.Area()*local
	}
	return above, below
}

// breaks returns the sorted, de-duplicated part boundaries across axis.
func (s *Section) breaks(axis shape.Axis) []float64 {
	var out []float64
	for _, p := range s.parts {
		off := p.At.Along(axis)
		for _, b := range p.Shape.Breaks(axis) {
			out = append(out, b+off)
		}
	}
	sort.Float64s(out)

	uniq := out[:0]
	for i, b := range out {
		if i == 0 || b != uniq[len(uniq)-1] {
			uniq = append(uniq, b)
		}
	}
	return uniq
}
