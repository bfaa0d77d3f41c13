package shape

import "math"

// outlineSegments is the number of chords used to draw a circle.
const outlineSegments = 72

// Annulus is a circular hollow section (tube).
type Annulus struct {
	D float64 // outer diameter (mm)
	T float64 // wall thickness (mm)
}

// NewTube builds a tube from outer diameter and wall thickness.
func NewTube(d, t float64) (Annulus, error) {
	if err := requirePositive("annulus", "D", d); err != nil {
		return Annulus{}, err
	}
	if err := requirePositive("annulus", "t", t); err != nil {
		return Annulus{}, err
	}
	if 2*t >= d {
		return Annulus{}, &GeometryError{Shape: "annulus", Field: "t", Value: t,
			Msg: "inner diameter must be positive (t < D/2)"}
	}
	return Annulus{D: d, T: t}, nil
}

// NewAnnulus builds an annulus from outer and inner diameters.
func NewAnnulus(dOut, dIn float64) (Annulus, error) {
	if err := requirePositive("annulus", "d_in", dIn); err != nil {
		return Annulus{}, err
	}
	if dOut <= dIn {
		return Annulus{}, &GeometryError{Shape: "annulus", Field: "D", Value: dOut,
			Msg: "outer diameter must exceed inner diameter"}
	}
	return NewTube(dOut, (dOut-dIn)/2)
}

func (a Annulus) Kind() Kind { return KindAnnulus }

// Ro is the outer radius
func (a Annulus) Ro() float64 { return a.D / 2 }

// Ri is the inner radius
func (a Annulus) Ri() float64 { return a.D/2 - a.T }

// Di is the inner diameter
func (a Annulus) Di() float64 { return a.D - 2*a.T }

func (a Annulus) Area() float64 {
	di := a.Di()
	return math.Pi / 4 * (a.D*a.D - di*di)
}

func (a Annulus) SecondMoment(Axis) float64 {
	di := a.Di()
	return math.Pi / 64 * (math.Pow(a.D, 4) - math.Pow(di, 4))
}

func (a Annulus) Extent(Axis) (lo, hi float64) {
	return -a.Ro(), a.Ro()
}

func (a Annulus) AreaAbove(_ Axis, cut float64) float64 {
	ao, _ := diskAbove(a.Ro(), cut)
	ai, _ := diskAbove(a.Ri(), cut)
	return ao - ai
}

func (a Annulus) MomentAbove(_ Axis, cut float64) float64 {
	_, qo := diskAbove(a.Ro(), cut)
	_, qi := diskAbove(a.Ri(), cut)
	return qo - qi
}

func (a Annulus) Breaks(Axis) []float64 {
	return []float64{-a.Ro(), -a.Ri(), a.Ri(), a.Ro()}
}

func (a Annulus) Contains(p Point) bool {
	r := math.Hypot(p.X, p.Y)
	return r <= a.Ro() && r >= a.Ri()
}

func (a Annulus) Outline() [][]Point {
	return [][]Point{circle(a.Ro()), circle(a.Ri())}
}

// diskAbove returns the area of a disk of radius r centred on the origin
// lying beyond cut, and its first moment about the cut line.
func diskAbove(r, cut float64) (area, moment float64) {
	switch {
	case cut >= r:
		return 0, 0
	case cut <= -r:
		area = math.Pi * r * r
		return area, -area * cut
	}
	h := r*r - cut*cut
	s := math.Sqrt(h)
	area = r*r*math.Acos(cut/r) - cut*s
	// first moment of the circular segment about the diameter
	q0 := 2.0 / 3.0 * h * s
	return area, q0 - area*cut
}

func circle(r float64) []Point {
	pts := make([]Point, outlineSegments)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / outlineSegments
		pts[i] = Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	return pts
}
